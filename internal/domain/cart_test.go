package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCartItemsTotal(t *testing.T) {
	cart := Cart{Items: []CartLine{
		{Quantity: 2, Product: Product{Price: decimal.RequireFromString("10.00")}},
		{Quantity: 1, Product: Product{Price: decimal.RequireFromString("5.50")}},
	}}
	want := decimal.RequireFromString("25.50")
	if got := cart.ItemsTotal(); !got.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, got)
	}
	if cart.Quantity() != 3 {
		t.Fatalf("expected 3 units, got %d", cart.Quantity())
	}
}

func TestCartItemsTotalIgnoresStaleServerTotal(t *testing.T) {
	cart := Cart{
		Total: decimal.RequireFromString("99.99"),
		Items: []CartLine{{Quantity: 3, Product: Product{Price: decimal.RequireFromString("1.10")}}},
	}
	if got := cart.ItemsTotal(); !got.Equal(decimal.RequireFromString("3.30")) {
		t.Fatalf("unexpected total %s", got)
	}
}

func TestTempLineID(t *testing.T) {
	id := TempLineID("42")
	if id != "temp-42" {
		t.Fatalf("unexpected temp id %q", id)
	}
	if !(CartLine{ID: id}).Temporary() {
		t.Fatalf("expected temp line")
	}
	if (CartLine{ID: "42"}).Temporary() {
		t.Fatalf("server id must not be temporary")
	}
}

func TestCartLineProductKeyFallsBackToSnapshot(t *testing.T) {
	line := CartLine{ID: "1", Product: Product{ID: "7"}}
	if line.ProductKey() != "7" {
		t.Fatalf("expected product key from snapshot, got %q", line.ProductKey())
	}
	line.ProductID = "8"
	if line.ProductKey() != "8" {
		t.Fatalf("expected explicit product id, got %q", line.ProductKey())
	}
}

func TestCartDecodesBackendPayload(t *testing.T) {
	raw := `{"id":3,"itens":[{"id":11,"quantidade":2,"produto":{"id":5,"nome":"Guaraná","preco":"4.50","estoque":9}}],"total":"9.00"}`
	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cart.ID != "3" || len(cart.Items) != 1 {
		t.Fatalf("unexpected cart %+v", cart)
	}
	line := cart.Items[0]
	if line.ID != "11" || line.ProductKey() != "5" || line.Product.Stock != 9 {
		t.Fatalf("unexpected line %+v", line)
	}
	if !cart.Total.Equal(decimal.RequireFromString("9")) {
		t.Fatalf("unexpected total %s", cart.Total)
	}
}

func TestIDMarshal(t *testing.T) {
	cases := map[ID]string{
		"12":      `12`,
		"0":       `0`,
		"007":     `"007"`,
		"temp-12": `"temp-12"`,
		"":        `null`,
	}
	for id, want := range cases {
		got, err := json.Marshal(id)
		if err != nil {
			t.Fatalf("marshal %q: %v", id, err)
		}
		if string(got) != want {
			t.Fatalf("marshal %q: expected %s, got %s", id, want, got)
		}
	}
}

func TestIDUnmarshalRejectsGarbage(t *testing.T) {
	var id ID
	if err := json.Unmarshal([]byte(`{}`), &id); err == nil {
		t.Fatalf("expected error for object id")
	}
}

func TestMergeProductKeepsLocalFields(t *testing.T) {
	local := Product{ID: "1", Name: "Café", Price: decimal.RequireFromString("12.5"), Stock: 4, Image: "cafe.png"}
	merged := MergeProduct(local, Product{ID: "1", Stock: 3})
	if merged.Name != "Café" || merged.Image != "cafe.png" || !merged.Price.Equal(local.Price) {
		t.Fatalf("local fields lost: %+v", merged)
	}
	if merged.Stock != 3 {
		t.Fatalf("server stock should win, got %d", merged.Stock)
	}
}

func TestStockErrorIs(t *testing.T) {
	err := error(&StockError{Product: "Café", Stock: 2, InCart: 2, Requested: 1})
	if !errors.Is(err, ErrStockExceeded) {
		t.Fatalf("stock error should match ErrStockExceeded")
	}
}

func TestUserHelpers(t *testing.T) {
	u := User{ClientID: "9", Addresses: []Address{{ID: "1"}, {ID: "2", Default: true}}}
	if u.Key() != "9" {
		t.Fatalf("expected clienteId fallback, got %q", u.Key())
	}
	if u.EffectiveRole() != RoleNone {
		t.Fatalf("expected none role, got %q", u.EffectiveRole())
	}
	if addr := u.DefaultAddress(); addr == nil || addr.ID != "2" {
		t.Fatalf("unexpected default address %+v", addr)
	}
}
