package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`
			CREATE TABLE usuarios (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				email TEXT NOT NULL,
				senha_hash TEXT NOT NULL
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		// Email uniqueness is enforced here so a duplicate insert surfaces
		// as a constraint violation, never as a second matching row.
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_usuarios_email ON usuarios (email)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE livros (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				titulo TEXT NOT NULL,
				autor TEXT NOT NULL,
				ano_publicacao INTEGER NOT NULL,
				isbn TEXT,
				disponivel BOOLEAN NOT NULL DEFAULT TRUE
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_livros_autor ON livros (autor)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_livros_titulo ON livros (titulo)`)
		return errors.WithStack(err)
	}

	down := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`DROP TABLE livros`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`DROP TABLE usuarios`)
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}
