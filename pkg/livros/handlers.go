package livros

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/acervolabs/biblioteca/pkg/errcodes"
	"github.com/acervolabs/biblioteca/pkg/models"
)

type handler struct {
	livroService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateLivroPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if params.Titulo == "" || params.Autor == "" || params.AnoPublicacao == 0 {
		return errcodes.Validation("Campos obrigatórios faltando.")
	}

	livro := &models.Livro{
		Titulo:        params.Titulo,
		Autor:         params.Autor,
		AnoPublicacao: params.AnoPublicacao,
		ISBN:          normalizeISBN(params.ISBN),
		Disponivel:    true,
	}
	if params.Disponivel != nil {
		livro.Disponivel = *params.Disponivel
	}

	livro, err := h.livroService.CreateLivro(ctx, livro)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, LivroComMensagem{
		Livro:    livro,
		Mensagem: "Livro cadastrado com sucesso!",
	}))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListLivrosQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	opts := ListLivrosOptions{}
	if params.Autor != nil && *params.Autor != "" {
		opts.Autor = params.Autor
	}
	if params.Titulo != nil && *params.Titulo != "" {
		opts.Titulo = params.Titulo
	}
	if params.Disponivel != nil {
		// "true" and "1" mean available; any other supplied value means
		// unavailable. Absent means no filter at all.
		disponivel := *params.Disponivel == "true" || *params.Disponivel == "1"
		opts.Disponivel = &disponivel
	}

	livros, total, err := h.livroService.ListLivros(ctx, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		Total  int             `json:"total"`
		Livros []*models.Livro `json:"livros"`
	}{total, livros}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Livro")
	}

	livro, err := h.livroService.RetrieveLivro(ctx, RetrieveLivroOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, livro))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Livro")
	}

	params := UpdateLivroPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	// Reject before touching the store when no recognized field is present.
	if params.Titulo == nil && params.Autor == nil && params.AnoPublicacao == nil &&
		params.ISBN == nil && params.Disponivel == nil {
		return errcodes.Validation("Nenhum campo de atualização válido fornecido.")
	}

	livro, err := h.livroService.RetrieveLivro(ctx, RetrieveLivroOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	opts := UpdateLivroOptions{Columns: []string{}}

	if params.Titulo != nil && *params.Titulo != livro.Titulo {
		livro.Titulo = *params.Titulo
		opts.Columns = append(opts.Columns, "titulo")
	}
	if params.Autor != nil && *params.Autor != livro.Autor {
		livro.Autor = *params.Autor
		opts.Columns = append(opts.Columns, "autor")
	}
	if params.AnoPublicacao != nil && *params.AnoPublicacao != livro.AnoPublicacao {
		livro.AnoPublicacao = *params.AnoPublicacao
		opts.Columns = append(opts.Columns, "ano_publicacao")
	}
	if params.ISBN != nil {
		livro.ISBN = normalizeISBN(params.ISBN)
		opts.Columns = append(opts.Columns, "isbn")
	}
	if params.Disponivel != nil && *params.Disponivel != livro.Disponivel {
		livro.Disponivel = *params.Disponivel
		opts.Columns = append(opts.Columns, "disponivel")
	}

	err = h.livroService.UpdateLivro(ctx, livro, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	livro, err = h.livroService.RetrieveLivro(ctx, RetrieveLivroOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, LivroComMensagem{
		Livro:    livro,
		Mensagem: "Livro atualizado com sucesso!",
	}))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Livro")
	}

	if err := h.livroService.DeleteLivro(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, MensagemResponse{
		Mensagem: "Livro removido com sucesso!",
	}))
}

func (h *handler) toggleDisponivel(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Livro")
	}

	livro, err := h.livroService.ToggleDisponivel(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, LivroComMensagem{
		Livro:    livro,
		Mensagem: "Disponibilidade atualizada com sucesso!",
	}))
}

// normalizeISBN maps a missing or empty ISBN to null.
func normalizeISBN(isbn *string) *string {
	if isbn == nil || *isbn == "" {
		return nil
	}
	return isbn
}
