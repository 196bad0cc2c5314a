package livros

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/acervolabs/biblioteca/pkg/errcodes"
	"github.com/acervolabs/biblioteca/pkg/models"
)

type RetrieveLivroOptions struct {
	ID *int
}

// ListLivrosOptions carries the optional listing filters. Each non-nil field
// appends one AND-ed predicate; autor and titulo match substrings, disponivel
// matches exactly.
type ListLivrosOptions struct {
	Autor      *string
	Titulo     *string
	Disponivel *bool
}

type UpdateLivroOptions struct {
	Columns []string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateLivro inserts the record and re-reads it by its assigned identifier,
// so the caller sees the row exactly as stored, including any defaults the
// store applied.
func (svc *Service) CreateLivro(ctx context.Context, livro *models.Livro) (*models.Livro, error) {
	now := time.Now()
	livro.CreatedAt = now
	livro.UpdatedAt = now

	_, err := svc.db.NewInsert().Model(livro).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return svc.RetrieveLivro(ctx, RetrieveLivroOptions{ID: &livro.ID})
}

func (svc *Service) RetrieveLivro(ctx context.Context, opts RetrieveLivroOptions) (*models.Livro, error) {
	livro := &models.Livro{}

	q := svc.db.
		NewSelect().
		Model(livro)

	if opts.ID != nil {
		q = q.Where("l.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Livro")
		}
		return nil, errors.WithStack(err)
	}

	return livro, nil
}

func (svc *Service) ListLivros(ctx context.Context, opts ListLivrosOptions) ([]*models.Livro, int, error) {
	livros := []*models.Livro{}

	q := svc.db.
		NewSelect().
		Model(&livros).
		Order("l.id ASC")

	if opts.Autor != nil {
		q = q.Where("l.autor LIKE ?", "%"+*opts.Autor+"%")
	}
	if opts.Titulo != nil {
		q = q.Where("l.titulo LIKE ?", "%"+*opts.Titulo+"%")
	}
	if opts.Disponivel != nil {
		q = q.Where("l.disponivel = ?", *opts.Disponivel)
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return livros, total, nil
}

// UpdateLivro writes only the given columns. Callers resolve the record first,
// so a missing identifier already surfaced as a not-found.
func (svc *Service) UpdateLivro(ctx context.Context, livro *models.Livro, opts UpdateLivroOptions) error {
	if len(opts.Columns) == 0 {
		return nil
	}

	livro.UpdatedAt = time.Now()
	opts.Columns = append(opts.Columns, "updated_at")

	_, err := svc.db.NewUpdate().
		Model(livro).
		Column(opts.Columns...).
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteLivro removes the record permanently. Deleting an identifier that
// does not exist is a not-found, every time.
func (svc *Service) DeleteLivro(ctx context.Context, id int) error {
	res, err := svc.db.NewDelete().
		Model((*models.Livro)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if rows == 0 {
		return errcodes.NotFound("Livro")
	}

	return nil
}

// ToggleDisponivel flips availability in a single statement so concurrent
// toggles cannot lose updates; the store, not the caller, determines the
// prior state.
func (svc *Service) ToggleDisponivel(ctx context.Context, id int) (*models.Livro, error) {
	res, err := svc.db.NewUpdate().
		Model((*models.Livro)(nil)).
		Set("disponivel = NOT disponivel").
		Set("updated_at = CURRENT_TIMESTAMP").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if rows == 0 {
		return nil, errcodes.NotFound("Livro")
	}

	return svc.RetrieveLivro(ctx, RetrieveLivroOptions{ID: &id})
}
