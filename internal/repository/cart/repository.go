package cart

import (
	"context"

	"guarashopp-storefront/internal/domain"
)

// Repository is the server-side cart of one user.
type Repository interface {
	Get(ctx context.Context, userID domain.ID) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, productID domain.ID, quantity int) (*domain.CartLine, error)
	UpdateItem(ctx context.Context, userID, itemID domain.ID, quantity int) (*domain.CartLine, error)
	RemoveItem(ctx context.Context, userID, itemID domain.ID) error
	Clear(ctx context.Context, userID domain.ID) error
}
