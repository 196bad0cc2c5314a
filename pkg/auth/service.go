// Package auth implements account registration and login.
//
// Passwords are stored as deterministic unsalted sha256 hex digests. That is
// the stored-credential format every existing row uses, so swapping in a
// salted slow hash means a credential migration, not just a code change. The
// digest is isolated behind HashPassword to keep that swap small.
package auth

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/acervolabs/biblioteca/pkg/errcodes"
	"github.com/acervolabs/biblioteca/pkg/models"
)

// Service handles account operations.
type Service struct {
	db *bun.DB
}

// NewService creates a new auth service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// Cadastrar registers a new account. A duplicate email is reported as a
// conflict, both by the pre-insert existence check and by mapping the unique
// constraint violation when two registrations race past the check.
func (s *Service) Cadastrar(ctx context.Context, email, senha string) (*models.Usuario, error) {
	exists, err := s.db.NewSelect().
		Model((*models.Usuario)(nil)).
		Where("email = ?", email).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if exists {
		return nil, errcodes.Conflict("Este email já está cadastrado.")
	}

	now := time.Now()
	usuario := &models.Usuario{
		CreatedAt: now,
		UpdatedAt: now,
		Email:     email,
		SenhaHash: HashPassword(senha),
	}

	_, err = s.db.NewInsert().Model(usuario).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errcodes.Conflict("Este email já está cadastrado.")
		}
		return nil, errors.WithStack(err)
	}

	return usuario, nil
}

// Autenticar looks up the account matching the email and password digest. A
// single combined query keeps the failure mode identical whether the email is
// unknown or the password is wrong.
func (s *Service) Autenticar(ctx context.Context, email, senha string) (*models.Usuario, error) {
	usuario := &models.Usuario{}
	err := s.db.NewSelect().
		Model(usuario).
		Where("u.email = ?", email).
		Where("u.senha_hash = ?", HashPassword(senha)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.Unauthorized("Credenciais inválidas.")
		}
		return nil, errors.WithStack(err)
	}

	return usuario, nil
}

// HashPassword computes the hex-encoded sha256 digest of a password.
func HashPassword(senha string) string {
	sum := sha256.Sum256([]byte(senha))
	return hex.EncodeToString(sum[:])
}

// isUniqueViolation reports whether the error is a sqlite UNIQUE constraint
// failure. Both mattn/go-sqlite3 and modernc.org/sqlite include this text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
