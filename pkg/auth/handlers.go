package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/acervolabs/biblioteca/pkg/errcodes"
)

type handler struct {
	authService *Service
}

// cadastro handles account registration.
func (h *handler) cadastro(c echo.Context) error {
	ctx := c.Request().Context()

	params := CadastroPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if params.Email == "" || params.Senha == "" {
		return errcodes.Validation("Email e senha são obrigatórios.")
	}

	usuario, err := h.authService.Cadastrar(ctx, params.Email, params.Senha)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CadastroResponse{
		Mensagem: "Usuário cadastrado com sucesso!",
		ID:       usuario.ID,
	})
}

// login authenticates an account. The returned token is the user's numeric
// identifier, held client-side; there is no server-side session state.
func (h *handler) login(c echo.Context) error {
	ctx := c.Request().Context()

	params := LoginPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if params.Email == "" || params.Senha == "" {
		return errcodes.Validation("Email e senha são obrigatórios.")
	}

	usuario, err := h.authService.Autenticar(ctx, params.Email, params.Senha)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Mensagem: "Login realizado com sucesso!",
		Token:    usuario.ID,
	})
}
