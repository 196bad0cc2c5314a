package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Livro is a catalog record. Disponivel is a real boolean in the domain
// model; the sqlite integer representation stays behind the bun mapping.
type Livro struct {
	bun.BaseModel `bun:"table:livros,alias:l"`

	ID            int       `bun:",pk,nullzero" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Titulo        string    `bun:",nullzero" json:"titulo"`
	Autor         string    `bun:",nullzero" json:"autor"`
	AnoPublicacao int       `json:"ano_publicacao"`
	ISBN          *string   `bun:"isbn" json:"isbn"`
	Disponivel    bool      `json:"disponivel"`
}
