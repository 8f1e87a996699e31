package customer

import (
	"context"
	"encoding/json"

	"guarashopp-storefront/internal/domain"
)

// LoginResult is the raw /auth/login answer. Token is either a JWT string
// or an object carrying access_token.
type LoginResult struct {
	Token json.RawMessage `json:"token"`
	User  *domain.User    `json:"usuario"`
}

// Registration is the POST /cliente body.
type Registration struct {
	FullName  string `json:"nome_completo"`
	Email     string `json:"email"`
	Password  string `json:"senha"`
	Phone     string `json:"numero_telefone"`
	BirthDate string `json:"data_nascimento"`
}

// Patch carries the profile fields a PATCH /cliente/{id} may change. Nil
// fields are left out of the request.
type Patch struct {
	FullName  *string      `json:"nome_completo,omitempty"`
	Email     *string      `json:"email,omitempty"`
	Phone     *string      `json:"numero_telefone,omitempty"`
	BirthDate *string      `json:"data_nascimento,omitempty"`
	Role      *domain.Role `json:"role,omitempty"`
	Active    *bool        `json:"ativo,omitempty"`
}

type Repository interface {
	Login(ctx context.Context, identifier, secret string) (*LoginResult, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) (string, error)
	Register(ctx context.Context, in Registration) error

	Get(ctx context.Context, id domain.ID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id domain.ID, patch Patch) (*domain.User, error)

	AddAddress(ctx context.Context, a domain.Address) error
	UpdateAddress(ctx context.Context, id domain.ID, a domain.Address) error
	DeleteAddress(ctx context.Context, id domain.ID) error
}
