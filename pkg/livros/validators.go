package livros

import (
	"github.com/acervolabs/biblioteca/pkg/models"
)

// CreateLivroPayload represents the book creation request body. The required
// fields are checked in the handler so a missing field returns the contract's
// exact message; zero values count as missing.
type CreateLivroPayload struct {
	Titulo        string  `json:"titulo" validate:"omitempty,max=500"`
	Autor         string  `json:"autor" validate:"omitempty,max=300"`
	AnoPublicacao int     `json:"ano_publicacao"`
	ISBN          *string `json:"isbn" validate:"omitempty,max=20"`
	Disponivel    *bool   `json:"disponivel"`
}

// UpdateLivroPayload is a partial record: only the five recognized fields are
// ever applied, and a nil field is left untouched. Unknown fields are dropped
// by the binder.
type UpdateLivroPayload struct {
	Titulo        *string `json:"titulo" validate:"omitempty,max=500"`
	Autor         *string `json:"autor" validate:"omitempty,max=300"`
	AnoPublicacao *int    `json:"ano_publicacao"`
	ISBN          *string `json:"isbn" validate:"omitempty,max=20"`
	Disponivel    *bool   `json:"disponivel"`
}

// ListLivrosQuery represents the listing filters. Disponivel is bound as a
// string because any supplied value is boolean-ish: "true"/"1" mean true,
// anything else means false.
type ListLivrosQuery struct {
	Autor      *string `query:"autor" json:"autor,omitempty" validate:"omitempty,max=300"`
	Titulo     *string `query:"titulo" json:"titulo,omitempty" validate:"omitempty,max=500"`
	Disponivel *string `query:"disponivel" json:"disponivel,omitempty"`
}

// LivroComMensagem is a book response with a confirmation message appended.
type LivroComMensagem struct {
	*models.Livro
	Mensagem string `json:"mensagem"`
}

// MensagemResponse is a bare confirmation message.
type MensagemResponse struct {
	Mensagem string `json:"mensagem"`
}
