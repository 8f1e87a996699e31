package customer

import "errors"

var (
	// ErrInvalidCredentials is a 401 from /auth/login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled is a successful login for an account marked inactive.
	ErrAccountDisabled = errors.New("account disabled")
	// ErrInvalidResponse is a login answer without token or usuario.id.
	ErrInvalidResponse = errors.New("invalid login response")
	// ErrLoginRejected is a 400 from /auth/login.
	ErrLoginRejected = errors.New("login rejected")
	// ErrLoginUnavailable covers transport failures and other statuses.
	ErrLoginUnavailable = errors.New("login unavailable")
)

const (
	msgInvalidCredentials = "Email ou senha incorretos."
	msgAccountDisabled    = "Sua conta está desativada. Contate o suporte para reativação."
	msgInvalidResponse    = "Resposta inválida do servidor."
	msgLoginUnavailable   = "Erro de conexão ou credenciais inválidas."
)
