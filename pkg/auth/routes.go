package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers the registration and login routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB) *Service {
	authService := NewService(db)

	h := &handler{
		authService: authService,
	}

	e.POST("/cadastro", h.cadastro)
	e.POST("/login", h.login)

	return authService
}
