package order

import (
	"context"
	"strings"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
	orderrepo "guarashopp-storefront/internal/repository/order"
)

// UserSource returns the authenticated user id, or "" when logged out.
type UserSource func() domain.ID

var defaultMethods = []domain.PaymentMethod{domain.PaymentCard, domain.PaymentPix, domain.PaymentBoleto}

type Service struct {
	repo orderrepo.Repository
	user UserSource
}

func New(repo orderrepo.Repository, user UserSource) *Service {
	return &Service{repo: repo, user: user}
}

func (s *Service) MyOrders(ctx context.Context) ([]domain.Order, error) {
	userID := s.user()
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	orders, err := s.repo.ListByCustomer(ctx, userID)
	if err != nil {
		return nil, domain.Fail(err, apiclient.MessageOr(err, "Erro ao carregar pedidos."))
	}
	return orders, nil
}

// AllOrders is the admin listing; role checks happen at the route.
func (s *Service) AllOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fail(err, apiclient.MessageOr(err, "Erro ao carregar pedidos."))
	}
	return orders, nil
}

// PaymentMethods falls back to the built-in list when the backend has none.
func (s *Service) PaymentMethods(ctx context.Context) []domain.PaymentMethod {
	methods, err := s.repo.PaymentMethods(ctx)
	if err != nil || len(methods) == 0 {
		return append([]domain.PaymentMethod(nil), defaultMethods...)
	}
	out := methods[:0]
	for _, m := range methods {
		if m.Valid() {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return append([]domain.PaymentMethod(nil), defaultMethods...)
	}
	return out
}

func (s *Service) ChangePaymentMethod(ctx context.Context, id domain.ID, in forms.PaymentChange) error {
	if s.user() == "" {
		return domain.ErrNotAuthenticated
	}
	if err := forms.Validate(in); err != nil {
		return err
	}
	if err := s.repo.ChangePaymentMethod(ctx, id, domain.PaymentMethod(in.Method)); err != nil {
		return domain.Fail(err, apiclient.MessageOr(err, "Erro ao alterar forma de pagamento."))
	}
	return nil
}

func (s *Service) Cancel(ctx context.Context, id domain.ID, in forms.Cancellation) error {
	if s.user() == "" {
		return domain.ErrNotAuthenticated
	}
	in.Justification = strings.TrimSpace(in.Justification)
	if err := forms.Validate(in); err != nil {
		return err
	}
	if err := s.repo.Cancel(ctx, id, in.Justification); err != nil {
		return domain.Fail(err, apiclient.MessageOr(err, "Erro ao cancelar pedido."))
	}
	return nil
}
