package category

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

func (r *restRepo) List(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := r.api.Get(ctx, "/categoria", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepo) Create(ctx context.Context, c domain.Category) error {
	c.ID = ""
	return r.api.Post(ctx, "/categoria", c, nil)
}

func (r *restRepo) Update(ctx context.Context, id domain.ID, c domain.Category) error {
	c.ID = ""
	return r.api.Patch(ctx, "/categoria/"+url.PathEscape(id.String()), c, nil)
}

func (r *restRepo) Delete(ctx context.Context, id domain.ID) error {
	return r.api.Delete(ctx, "/categoria/"+url.PathEscape(id.String()), nil)
}
