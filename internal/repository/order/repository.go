package order

import (
	"context"

	"guarashopp-storefront/internal/domain"
)

type Repository interface {
	ListByCustomer(ctx context.Context, customerID domain.ID) ([]domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	ChangePaymentMethod(ctx context.Context, id domain.ID, method domain.PaymentMethod) error
	Cancel(ctx context.Context, id domain.ID, justification string) error
	Place(ctx context.Context, in domain.NewOrder) (*domain.Order, error)
}
