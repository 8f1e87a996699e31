package checkout

import (
	"context"
	"errors"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
	"guarashopp-storefront/internal/logger"
)

const msgCheckoutFailed = "Erro ao finalizar compra. Tente novamente."

var ErrInvalidPaymentMethod = errors.New("forma de pagamento inválida")

type session interface {
	User() *domain.User
	UserID() domain.ID
}

type cart interface {
	Fetch(ctx context.Context) error
	Snapshot() domain.Cart
	Clear(ctx context.Context) error
}

type placer interface {
	Place(ctx context.Context, in domain.NewOrder) (*domain.Order, error)
}

// Request is the checkout form. Card is only read for card payments.
type Request struct {
	Method domain.PaymentMethod `json:"metodoPagamento"`
	Card   *forms.Card          `json:"cartao,omitempty"`
}

type Service struct {
	session session
	cart    cart
	orders  placer
	logger  *logger.Logger
}

func New(sess session, c cart, orders placer, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{session: sess, cart: c, orders: orders, logger: log}
}

// Place submits the freshly fetched cart as an order and clears the cart.
// The order is returned even when clearing the cart fails afterwards.
func (s *Service) Place(ctx context.Context, req Request) (*domain.Order, error) {
	user := s.session.User()
	userID := s.session.UserID()
	if user == nil || userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if !req.Method.Valid() {
		return nil, domain.Fail(ErrInvalidPaymentMethod, "Selecione uma forma de pagamento.")
	}
	if req.Method == domain.PaymentCard {
		if req.Card == nil {
			return nil, &forms.ValidationError{Field: "cartao", Message: "Informe os dados do cartão."}
		}
		if err := forms.Validate(*req.Card); err != nil {
			return nil, err
		}
	}
	address := user.DefaultAddress()
	if address == nil {
		return nil, domain.Fail(domain.ErrNoDefaultAddress, "Você precisa cadastrar um endereço padrão antes de finalizar a compra.")
	}

	if err := s.cart.Fetch(ctx); err != nil {
		return nil, domain.Fail(err, msgCheckoutFailed)
	}
	current := s.cart.Snapshot()
	if len(current.Items) == 0 {
		return nil, domain.Fail(domain.ErrEmptyCart, "Seu carrinho está vazio.")
	}

	// The backend total is authoritative; it is absent only on carts that
	// were never priced server-side.
	total := current.Total
	if total.IsZero() {
		total = current.ItemsTotal()
	}
	order, err := s.orders.Place(ctx, domain.NewOrder{
		UserID:          userID,
		Items:           current.Items,
		Total:           total,
		ShippingAddress: address,
		PaymentMethod:   req.Method,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("userId", userID.String()).Msg("place order failed")
		return nil, domain.Fail(err, apiclient.MessageOr(err, msgCheckoutFailed))
	}
	if order == nil {
		order = &domain.Order{Total: total, PaymentMethod: req.Method, Status: domain.OrderPending}
	}
	s.logger.Info().Str("userId", userID.String()).Str("orderId", order.ID.String()).Msg("order placed")

	if err := s.cart.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Str("userId", userID.String()).Msg("clear cart after checkout failed")
	}
	return order, nil
}
