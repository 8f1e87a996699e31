package order

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

func (r *restRepo) ListByCustomer(ctx context.Context, customerID domain.ID) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.api.Get(ctx, "/pedido/cliente/"+url.PathEscape(customerID.String()), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepo) List(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := r.api.Get(ctx, "/pedido", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepo) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	var out []domain.PaymentMethod
	if err := r.api.Get(ctx, "/pagamento/metodos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restRepo) ChangePaymentMethod(ctx context.Context, id domain.ID, method domain.PaymentMethod) error {
	body := struct {
		Method domain.PaymentMethod `json:"metodoPagamento"`
	}{method}
	return r.api.Patch(ctx, orderPath(id), body, nil)
}

func (r *restRepo) Cancel(ctx context.Context, id domain.ID, justification string) error {
	body := struct {
		Status        domain.OrderStatus `json:"status"`
		Justification string             `json:"justificativa"`
	}{domain.OrderCancelled, justification}
	return r.api.Patch(ctx, orderPath(id), body, nil)
}

// Place returns nil when the backend answers without a body.
func (r *restRepo) Place(ctx context.Context, in domain.NewOrder) (*domain.Order, error) {
	var out domain.Order
	if err := r.api.Post(ctx, "/pedidos", in, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

func orderPath(id domain.ID) string {
	return "/pedido/" + url.PathEscape(id.String())
}
