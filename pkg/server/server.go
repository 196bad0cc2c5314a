package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"

	"github.com/acervolabs/biblioteca/pkg/auth"
	"github.com/acervolabs/biblioteca/pkg/binder"
	"github.com/acervolabs/biblioteca/pkg/config"
	"github.com/acervolabs/biblioteca/pkg/errcodes"
	"github.com/acervolabs/biblioteca/pkg/livros"
)

// New wires the echo instance: binder, middleware, health routes, and the
// account and catalog routes. The database handle is constructed by the
// caller and shared read-only across every handler; no handler holds
// cross-request state.
func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())
	// Explicit per-request deadline; store calls inherit it through the
	// request context.
	e.Use(middleware.ContextTimeout(cfg.RequestTimeout))

	health.RegisterRoutes(e)

	auth.RegisterRoutes(e, db)
	livros.RegisterRoutes(e, db)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Recurso")
}
