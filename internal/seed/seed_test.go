package seed

import (
	"context"
	"fmt"
	"testing"

	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
)

type memoryCatalog struct {
	cats  []domain.Category
	prods []domain.Product
}

type catStore struct{ m *memoryCatalog }

func (s catStore) List(context.Context) ([]domain.Category, error) { return s.m.cats, nil }

func (s catStore) Save(_ context.Context, _ domain.ID, in forms.Category) error {
	s.m.cats = append(s.m.cats, domain.Category{ID: domain.ID(fmt.Sprint(len(s.m.cats) + 1)), Name: in.Name})
	return nil
}

type prodStore struct{ m *memoryCatalog }

func (s prodStore) List(context.Context) ([]domain.Product, error) { return s.m.prods, nil }

func (s prodStore) Save(_ context.Context, _ domain.ID, in forms.Product) error {
	s.m.prods = append(s.m.prods, domain.Product{Name: in.Name, Category: &domain.Category{ID: domain.ID(in.CategoryID)}})
	return nil
}

func TestApplyIsIdempotent(t *testing.T) {
	m := &memoryCatalog{cats: []domain.Category{{ID: "9", Name: "cozinha"}}}

	created, err := Apply(context.Background(), catStore{m}, prodStore{m})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if created != len(products)+1 {
		t.Fatalf("expected %d creations, got %d", len(products)+1, created)
	}
	if m.prods[0].Category.ID != "9" {
		t.Fatalf("existing category should be reused, got %s", m.prods[0].Category.ID)
	}

	again, err := Apply(context.Background(), catStore{m}, prodStore{m})
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if again != 0 {
		t.Fatalf("second run should create nothing, got %d", again)
	}
}
