package livros

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the book CRUD routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB) *Service {
	livroService := NewService(db)

	h := &handler{
		livroService: livroService,
	}

	g := e.Group("/livros")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.PATCH("/:id/disponivel", h.toggleDisponivel)

	return livroService
}
