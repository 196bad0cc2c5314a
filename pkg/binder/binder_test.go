package binder

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acervolabs/biblioteca/pkg/errcodes"
)

type testPayload struct {
	Titulo string `json:"titulo" validate:"omitempty,max=10"`
	Ano    *int   `json:"ano"`
}

type testQuery struct {
	Autor      *string `query:"autor" json:"autor,omitempty"`
	Disponivel *string `query:"disponivel" json:"disponivel,omitempty"`
}

func newTestContext(t *testing.T, method, target, body string) echo.Context {
	t.Helper()

	e := echo.New()
	b, err := New()
	require.NoError(t, err)
	e.Binder = b

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindJSONBody(t *testing.T) {
	t.Parallel()

	c := newTestContext(t, http.MethodPost, "/", `{"titulo":"Dune","ano":1965}`)

	params := testPayload{}
	require.NoError(t, c.Bind(&params))

	assert.Equal(t, "Dune", params.Titulo)
	require.NotNil(t, params.Ano)
	assert.Equal(t, 1965, *params.Ano)
}

func TestBindIgnoresUnknownJSONFields(t *testing.T) {
	t.Parallel()

	c := newTestContext(t, http.MethodPost, "/", `{"titulo":"Dune","editora":"Aleph"}`)

	params := testPayload{}
	require.NoError(t, c.Bind(&params))
	assert.Equal(t, "Dune", params.Titulo)
}

func TestBindTypeError(t *testing.T) {
	t.Parallel()

	c := newTestContext(t, http.MethodPost, "/", `{"ano":"nineteen"}`)

	params := testPayload{}
	err := c.Bind(&params)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "validation_type_error", codeErr.Code)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
}

func TestBindValidationError(t *testing.T) {
	t.Parallel()

	c := newTestContext(t, http.MethodPost, "/", `{"titulo":"this title is far too long"}`)

	params := testPayload{}
	err := c.Bind(&params)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "validation_error", codeErr.Code)
}

func TestBindEmptyBody(t *testing.T) {
	t.Parallel()

	c := newTestContext(t, http.MethodPost, "/", "")

	params := testPayload{}
	err := c.Bind(&params)
	require.ErrorIs(t, err, errcodes.EmptyRequestBody())
}

func TestBindQueryParams(t *testing.T) {
	t.Parallel()

	c := newTestContext(t, http.MethodGet, "/livros?autor=Herbert&disponivel=true&ordenar=asc", "")

	params := testQuery{}
	require.NoError(t, c.Bind(&params))

	require.NotNil(t, params.Autor)
	assert.Equal(t, "Herbert", *params.Autor)
	require.NotNil(t, params.Disponivel)
	assert.Equal(t, "true", *params.Disponivel)
}

func TestBindQueryParamsAbsent(t *testing.T) {
	t.Parallel()

	c := newTestContext(t, http.MethodGet, "/livros", "")

	params := testQuery{}
	require.NoError(t, c.Bind(&params))

	assert.Nil(t, params.Autor)
	assert.Nil(t, params.Disponivel)
}
