package livros

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/acervolabs/biblioteca/pkg/errcodes"
	"github.com/acervolabs/biblioteca/pkg/migrations"
	"github.com/acervolabs/biblioteca/pkg/models"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func seedLivro(ctx context.Context, t *testing.T, svc *Service, titulo, autor string, ano int, disponivel bool) *models.Livro {
	t.Helper()

	livro, err := svc.CreateLivro(ctx, &models.Livro{
		Titulo:        titulo,
		Autor:         autor,
		AnoPublicacao: ano,
		Disponivel:    disponivel,
	})
	require.NoError(t, err)
	return livro
}

func strptr(s string) *string { return &s }

func TestServiceCreateLivroRoundTrip(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	created, err := svc.CreateLivro(ctx, &models.Livro{
		Titulo:        "Dune",
		Autor:         "Herbert",
		AnoPublicacao: 1965,
		Disponivel:    true,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := svc.RetrieveLivro(ctx, RetrieveLivroOptions{ID: &created.ID})
	require.NoError(t, err)

	assert.Equal(t, "Dune", fetched.Titulo)
	assert.Equal(t, "Herbert", fetched.Autor)
	assert.Equal(t, 1965, fetched.AnoPublicacao)
	assert.Nil(t, fetched.ISBN)
	assert.True(t, fetched.Disponivel)
}

func TestServiceRetrieveLivroNotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)

	id := 9999
	_, err := svc.RetrieveLivro(context.Background(), RetrieveLivroOptions{ID: &id})
	require.ErrorIs(t, err, errcodes.NotFound("Livro"))
}

func TestServiceListLivrosFilters(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	seedLivro(ctx, t, svc, "Dune", "Frank Herbert", 1965, true)
	seedLivro(ctx, t, svc, "Dune Messiah", "Frank Herbert", 1969, false)
	seedLivro(ctx, t, svc, "Neuromancer", "William Gibson", 1984, true)

	// no filters: full scan
	livros, total, err := svc.ListLivros(ctx, ListLivrosOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, livros, 3)

	// autor substring
	livros, total, err = svc.ListLivros(ctx, ListLivrosOptions{Autor: strptr("Herbert")})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, livro := range livros {
		assert.Contains(t, livro.Autor, "Herbert")
	}

	// titulo substring
	_, total, err = svc.ListLivros(ctx, ListLivrosOptions{Titulo: strptr("Messiah")})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	// disponivel strict both ways
	disponivel := true
	livros, _, err = svc.ListLivros(ctx, ListLivrosOptions{Disponivel: &disponivel})
	require.NoError(t, err)
	require.Len(t, livros, 2)
	for _, livro := range livros {
		assert.True(t, livro.Disponivel)
	}

	disponivel = false
	livros, _, err = svc.ListLivros(ctx, ListLivrosOptions{Disponivel: &disponivel})
	require.NoError(t, err)
	require.Len(t, livros, 1)
	assert.False(t, livros[0].Disponivel)

	// combined filters AND together
	_, total, err = svc.ListLivros(ctx, ListLivrosOptions{Autor: strptr("Herbert"), Titulo: strptr("Dune"), Disponivel: &disponivel})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestServiceListLivrosEmptyResultIsNotAnError(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)

	livros, total, err := svc.ListLivros(context.Background(), ListLivrosOptions{Autor: strptr("Asimov")})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, livros)
}

func TestServiceUpdateLivroWritesOnlyGivenColumns(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	livro := seedLivro(ctx, t, svc, "Dune", "Herbert", 1965, true)

	livro.Titulo = "Duna"
	err := svc.UpdateLivro(ctx, livro, UpdateLivroOptions{Columns: []string{"titulo"}})
	require.NoError(t, err)

	updated, err := svc.RetrieveLivro(ctx, RetrieveLivroOptions{ID: &livro.ID})
	require.NoError(t, err)
	assert.Equal(t, "Duna", updated.Titulo)
	assert.Equal(t, "Herbert", updated.Autor)
	assert.Equal(t, 1965, updated.AnoPublicacao)
}

func TestServiceUpdateLivroNoColumnsIsNoop(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	livro := seedLivro(ctx, t, svc, "Dune", "Herbert", 1965, true)

	err := svc.UpdateLivro(ctx, livro, UpdateLivroOptions{Columns: []string{}})
	require.NoError(t, err)

	unchanged, err := svc.RetrieveLivro(ctx, RetrieveLivroOptions{ID: &livro.ID})
	require.NoError(t, err)
	assert.Equal(t, "Dune", unchanged.Titulo)
}

func TestServiceDeleteLivroIsIdempotentlyNotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	livro := seedLivro(ctx, t, svc, "Dune", "Herbert", 1965, true)

	require.NoError(t, svc.DeleteLivro(ctx, livro.ID))

	err := svc.DeleteLivro(ctx, livro.ID)
	require.ErrorIs(t, err, errcodes.NotFound("Livro"))

	// and again: 404 both times, never a success
	err = svc.DeleteLivro(ctx, livro.ID)
	require.ErrorIs(t, err, errcodes.NotFound("Livro"))
}

func TestServiceToggleDisponivel(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	livro := seedLivro(ctx, t, svc, "Dune", "Herbert", 1965, true)

	toggled, err := svc.ToggleDisponivel(ctx, livro.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Disponivel)

	toggled, err = svc.ToggleDisponivel(ctx, livro.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Disponivel)
}

func TestServiceToggleDisponivelNotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)

	_, err := svc.ToggleDisponivel(context.Background(), 9999)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusNotFound, codeErr.HTTPCode)
}
