package category

import (
	"context"

	"guarashopp-storefront/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, c domain.Category) error
	Update(ctx context.Context, id domain.ID, c domain.Category) error
	Delete(ctx context.Context, id domain.ID) error
}
