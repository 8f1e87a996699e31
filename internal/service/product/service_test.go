package product

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
)

type stubRepo struct {
	items   []domain.Product
	listErr error
	created []domain.Product
	updated map[domain.ID]domain.Product
}

func (s *stubRepo) List(context.Context) ([]domain.Product, error) { return s.items, s.listErr }

func (s *stubRepo) Get(_ context.Context, id domain.ID) (*domain.Product, error) {
	for _, p := range s.items {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Create(_ context.Context, p domain.Product) error {
	s.created = append(s.created, p)
	return nil
}

func (s *stubRepo) Update(_ context.Context, id domain.ID, p domain.Product) error {
	if s.updated == nil {
		s.updated = map[domain.ID]domain.Product{}
	}
	s.updated[id] = p
	return nil
}

func (s *stubRepo) Delete(context.Context, domain.ID) error { return nil }

func (s *stubRepo) UploadImage(context.Context, string, io.Reader) (string, error) {
	return "img.png", nil
}

func TestListActiveFiltersInactive(t *testing.T) {
	repo := &stubRepo{items: []domain.Product{{ID: "1", Active: true}, {ID: "2"}, {ID: "3", Active: true}}}
	items, err := New(repo).ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.ID("3"), items[1].ID)
}

func TestListFailureCarriesMessage(t *testing.T) {
	repo := &stubRepo{listErr: errors.New("offline")}
	_, err := New(repo).List(context.Background())
	assert.EqualError(t, err, "Erro ao carregar produtos.")
}

func TestSaveCreatesOrUpdates(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	form := forms.Product{Name: " Café ", Price: "12,50", Stock: 4, CategoryID: "2"}

	require.NoError(t, svc.Save(context.Background(), "", form))
	require.Len(t, repo.created, 1)
	p := repo.created[0]
	assert.Equal(t, "Café", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, p.Active, "new products default to active")
	assert.Equal(t, domain.ID("2"), p.Category.ID)

	inactive := false
	form.Active = &inactive
	require.NoError(t, svc.Save(context.Background(), "9", form))
	assert.False(t, repo.updated["9"].Active)
}

func TestSaveRejectsBadPrice(t *testing.T) {
	err := New(&stubRepo{}).Save(context.Background(), "", forms.Product{Name: "X", Price: "abc", CategoryID: "1"})
	var vErr *forms.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "preco", vErr.Field)
}
