package product

import (
	"context"
	"io"

	"guarashopp-storefront/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id domain.ID) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) error
	Update(ctx context.Context, id domain.ID, p domain.Product) error
	Delete(ctx context.Context, id domain.ID) error
	// UploadImage stores an image and returns the filename to put in imagem.
	UploadImage(ctx context.Context, filename string, content io.Reader) (string, error)
}
