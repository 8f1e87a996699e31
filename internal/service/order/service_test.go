package order

import (
	"context"
	"errors"
	"testing"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
)

type stubRepo struct {
	byCustomer map[domain.ID][]domain.Order
	methods    []domain.PaymentMethod
	methodsErr error
	cancelled  map[domain.ID]string
	changed    map[domain.ID]domain.PaymentMethod
	err        error
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		byCustomer: map[domain.ID][]domain.Order{},
		cancelled:  map[domain.ID]string{},
		changed:    map[domain.ID]domain.PaymentMethod{},
	}
}

func (s *stubRepo) ListByCustomer(_ context.Context, id domain.ID) ([]domain.Order, error) {
	return s.byCustomer[id], s.err
}

func (s *stubRepo) List(context.Context) ([]domain.Order, error) {
	var out []domain.Order
	for _, orders := range s.byCustomer {
		out = append(out, orders...)
	}
	return out, s.err
}

func (s *stubRepo) PaymentMethods(context.Context) ([]domain.PaymentMethod, error) {
	return s.methods, s.methodsErr
}

func (s *stubRepo) ChangePaymentMethod(_ context.Context, id domain.ID, m domain.PaymentMethod) error {
	if s.err != nil {
		return s.err
	}
	s.changed[id] = m
	return nil
}

func (s *stubRepo) Cancel(_ context.Context, id domain.ID, justification string) error {
	if s.err != nil {
		return s.err
	}
	s.cancelled[id] = justification
	return nil
}

func (s *stubRepo) Place(context.Context, domain.NewOrder) (*domain.Order, error) {
	return nil, nil
}

func user(id domain.ID) UserSource { return func() domain.ID { return id } }

func TestMyOrdersRequiresSession(t *testing.T) {
	svc := New(newStubRepo(), user(""))
	if _, err := svc.MyOrders(context.Background()); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestMyOrdersListsOwnOrders(t *testing.T) {
	repo := newStubRepo()
	repo.byCustomer["7"] = []domain.Order{{ID: "100"}, {ID: "101"}}
	repo.byCustomer["8"] = []domain.Order{{ID: "200"}}

	orders, err := New(repo, user("7")).MyOrders(context.Background())
	if err != nil {
		t.Fatalf("my orders: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "100" {
		t.Fatalf("unexpected orders %+v", orders)
	}
}

func TestPaymentMethodsFallback(t *testing.T) {
	repo := newStubRepo()
	repo.methodsErr = errors.New("down")
	got := New(repo, user("7")).PaymentMethods(context.Background())
	if len(got) != 3 {
		t.Fatalf("expected the built-in methods, got %v", got)
	}

	repo.methodsErr = nil
	repo.methods = []domain.PaymentMethod{"pix", "cheque"}
	got = New(repo, user("7")).PaymentMethods(context.Background())
	if len(got) != 1 || got[0] != domain.PaymentPix {
		t.Fatalf("expected only pix, got %v", got)
	}
}

func TestCancelValidatesJustification(t *testing.T) {
	repo := newStubRepo()
	svc := New(repo, user("7"))

	err := svc.Cancel(context.Background(), "100", forms.Cancellation{Justification: "   curta   "})
	var vErr *forms.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "justificativa" {
		t.Fatalf("expected justification validation error, got %v", err)
	}
	if len(repo.cancelled) != 0 {
		t.Fatalf("nothing should be sent")
	}

	if err := svc.Cancel(context.Background(), "100", forms.Cancellation{Justification: "mudei de ideia sobre a compra"}); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if repo.cancelled["100"] != "mudei de ideia sobre a compra" {
		t.Fatalf("unexpected justification %q", repo.cancelled["100"])
	}
}

func TestChangePaymentMethod(t *testing.T) {
	repo := newStubRepo()
	svc := New(repo, user("7"))

	if err := svc.ChangePaymentMethod(context.Background(), "100", forms.PaymentChange{Method: "cheque"}); err == nil {
		t.Fatalf("expected unknown method to be rejected")
	}
	if err := svc.ChangePaymentMethod(context.Background(), "100", forms.PaymentChange{Method: "boleto"}); err != nil {
		t.Fatalf("change: %v", err)
	}
	if repo.changed["100"] != domain.PaymentBoleto {
		t.Fatalf("unexpected method %q", repo.changed["100"])
	}
}

func TestChangePaymentMethodCarriesServerMessage(t *testing.T) {
	repo := newStubRepo()
	repo.err = &apiclient.Error{Status: 409, Message: "Pedido já pago."}
	err := New(repo, user("7")).ChangePaymentMethod(context.Background(), "100", forms.PaymentChange{Method: "pix"})
	if err == nil || err.Error() != "Pedido já pago." {
		t.Fatalf("expected server message, got %v", err)
	}
}
