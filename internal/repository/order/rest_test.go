package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
)

func TestREST_CancelSendsStatusAndJustification(t *testing.T) {
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/pedido/12" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := NewREST(apiclient.New(srv.URL)).Cancel(context.Background(), "12", "Comprei errado o produto"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if body["status"] != "CANCELADO" || body["justificativa"] != "Comprei errado o produto" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestREST_PaymentMethodsAndPlace(t *testing.T) {
	var placed map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /pagamento/metodos":
			_, _ = w.Write([]byte(`["cartao","pix","boleto"]`))
		case "POST /pedidos":
			_ = json.NewDecoder(r.Body).Decode(&placed)
			_, _ = w.Write([]byte(`{"id":77,"status":"PENDENTE","total":"20.00"}`))
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	repo := NewREST(apiclient.New(srv.URL))
	methods, err := repo.PaymentMethods(ctx)
	if err != nil || len(methods) != 3 || methods[1] != domain.PaymentPix {
		t.Fatalf("PaymentMethods = %v, %v", methods, err)
	}

	order, err := repo.Place(ctx, domain.NewOrder{
		UserID:        "3",
		Total:         decimal.RequireFromString("20"),
		PaymentMethod: domain.PaymentPix,
	})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if order == nil || order.ID != "77" || order.Status != domain.OrderPending {
		t.Fatalf("unexpected order %+v", order)
	}
	if placed["userId"] != float64(3) || placed["metodoPagamento"] != "pix" {
		t.Fatalf("unexpected payload %v", placed)
	}
}
