package customer

import (
	"context"
	"net/url"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
)

type restRepo struct {
	api *apiclient.Client
}

func NewREST(api *apiclient.Client) Repository {
	return &restRepo{api: api}
}

type messageBody struct {
	Message string `json:"message"`
}

func (r *restRepo) Login(ctx context.Context, identifier, secret string) (*LoginResult, error) {
	body := struct {
		Identifier string `json:"identificador"`
		Secret     string `json:"senha"`
	}{identifier, secret}
	var out LoginResult
	if err := r.api.Post(ctx, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *restRepo) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out messageBody
	err := r.api.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}, &out)
	return out.Message, err
}

func (r *restRepo) ResetPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	body := map[string]string{"email": email, "code": code, "newPassword": newPassword}
	var out messageBody
	err := r.api.Post(ctx, "/auth/reset-password", body, &out)
	return out.Message, err
}

func (r *restRepo) Register(ctx context.Context, in Registration) error {
	return r.api.Post(ctx, "/cliente", in, nil)
}

func (r *restRepo) Get(ctx context.Context, id domain.ID) (*domain.User, error) {
	var out domain.User
	if err := r.api.Get(ctx, clientPath(id), &out); err != nil {
		if apiclient.IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *restRepo) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := r.api.Get(ctx, "/cliente", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update returns the server's view of the user when the response carries one.
func (r *restRepo) Update(ctx context.Context, id domain.ID, patch Patch) (*domain.User, error) {
	var out domain.User
	if err := r.api.Patch(ctx, clientPath(id), patch, &out); err != nil {
		return nil, err
	}
	if out.Key() == "" {
		return nil, nil
	}
	return &out, nil
}

func (r *restRepo) AddAddress(ctx context.Context, a domain.Address) error {
	a.ID = ""
	return r.api.Post(ctx, "/cliente/endereco", a, nil)
}

func (r *restRepo) UpdateAddress(ctx context.Context, id domain.ID, a domain.Address) error {
	a.ID = ""
	return r.api.Patch(ctx, addressPath(id), a, nil)
}

func (r *restRepo) DeleteAddress(ctx context.Context, id domain.ID) error {
	return r.api.Delete(ctx, addressPath(id), nil)
}

func clientPath(id domain.ID) string {
	return "/cliente/" + url.PathEscape(id.String())
}

func addressPath(id domain.ID) string {
	return "/cliente/endereco/" + url.PathEscape(id.String())
}
