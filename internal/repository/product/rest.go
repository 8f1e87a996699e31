package product

import (
	"context"
	"fmt"
	"io"
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

func (r *restRepo) List(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := r.api.Get(ctx, "/produto", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepo) Get(ctx context.Context, id domain.ID) (*domain.Product, error) {
	var out domain.Product
	if err := r.api.Get(ctx, path(id), &out); err != nil {
		if apiclient.IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *restRepo) Create(ctx context.Context, p domain.Product) error {
	p.ID = ""
	return r.api.Post(ctx, "/produto", payloadOf(p), nil)
}

func (r *restRepo) Update(ctx context.Context, id domain.ID, p domain.Product) error {
	return r.api.Patch(ctx, path(id), payloadOf(p), nil)
}

func (r *restRepo) Delete(ctx context.Context, id domain.ID) error {
	return r.api.Delete(ctx, path(id), nil)
}

func (r *restRepo) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	var out struct {
		Filename string `json:"filename"`
	}
	if err := r.api.Upload(ctx, "/produto/upload", "file", filename, content, &out); err != nil {
		return "", err
	}
	if out.Filename == "" {
		return "", fmt.Errorf("upload %s: response without filename", filename)
	}
	return out.Filename, nil
}

// payloadOf sends the category as {id} only; the API rejects a full category object.
func payloadOf(p domain.Product) domain.Product {
	if p.Category != nil {
		p.Category = &domain.Category{ID: p.Category.ID}
	}
	return p
}

func path(id domain.ID) string {
	return "/produto/" + url.PathEscape(id.String())
}
