package errcodes

import (
	"net/http"
)

type Error struct {
	HTTPCode int
	Message  string
	Code     string
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Code = err.Code
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Code == err.Code
}

// Validation returns a 400 error for missing or malformed input. The message
// is surfaced verbatim to the client in the `erro` field.
func Validation(msg string) error {
	return &Error{
		http.StatusBadRequest,
		msg,
		"validation_error",
	}
}

// ValidationType returns a 400 error for a field of the wrong type.
func ValidationType(msg string) error {
	return &Error{
		http.StatusBadRequest,
		msg,
		"validation_type_error",
	}
}

// Unauthorized returns a 401 error. Callers must keep the message generic so
// it never reveals which credential was wrong.
func Unauthorized(msg string) error {
	return &Error{
		http.StatusUnauthorized,
		msg,
		"unauthorized",
	}
}

// NotFound returns a 404 error with a message indicating the given resource.
func NotFound(resource string) error {
	return &Error{
		http.StatusNotFound,
		resource + " não encontrado",
		"not_found",
	}
}

// Conflict returns a 409 error for uniqueness violations.
func Conflict(msg string) error {
	return &Error{
		http.StatusConflict,
		msg,
		"conflict",
	}
}

func UnknownParameter(param string) error {
	return &Error{
		http.StatusBadRequest,
		"Parâmetro desconhecido: " + param,
		"unknown_parameter",
	}
}

func UnsupportedMediaType() error {
	return &Error{
		http.StatusUnsupportedMediaType,
		"Tipo de conteúdo não suportado.",
		"unsupported_media_type",
	}
}

func MalformedPayload() error {
	return &Error{
		http.StatusBadRequest,
		"Corpo da requisição inválido.",
		"malformed_payload",
	}
}

func EmptyRequestBody() error {
	return &Error{
		http.StatusBadRequest,
		"O corpo da requisição não pode ser vazio.",
		"empty_request_body",
	}
}
