package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Usuario struct {
	bun.BaseModel `bun:"table:usuarios,alias:u"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `bun:",nullzero" json:"email"`
	SenhaHash string    `json:"-"` // Never expose the password digest
}
