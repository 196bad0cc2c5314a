package auth

// CadastroPayload represents the registration request body. Required-ness is
// checked in the handler so the contract's exact message is returned when
// either field is missing.
type CadastroPayload struct {
	Email string `json:"email" validate:"omitempty,max=254"`
	Senha string `json:"senha" validate:"omitempty,max=128"`
}

// LoginPayload represents the login request body.
type LoginPayload struct {
	Email string `json:"email" validate:"omitempty,max=254"`
	Senha string `json:"senha" validate:"omitempty,max=128"`
}

// CadastroResponse is the registration success response.
type CadastroResponse struct {
	Mensagem string `json:"mensagem"`
	ID       int    `json:"id"`
}

// LoginResponse is the login success response.
type LoginResponse struct {
	Mensagem string `json:"mensagem"`
	Token    int    `json:"token"`
}
