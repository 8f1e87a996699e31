package layout

import "testing"

func TestCartVisibility(t *testing.T) {
	s := New()
	if s.CartVisible() {
		t.Fatalf("drawer starts hidden")
	}
	s.ShowCart()
	if !s.CartVisible() {
		t.Fatalf("expected visible")
	}
	if s.ToggleCart() {
		t.Fatalf("toggle should hide")
	}
	s.ToggleCart()
	s.HideCart()
	if s.CartVisible() {
		t.Fatalf("expected hidden")
	}
}
