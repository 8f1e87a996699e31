package seed

import (
	"context"
	"fmt"
	"strings"

	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
)

type ProductStore interface {
	List(ctx context.Context) ([]domain.Product, error)
	Save(ctx context.Context, id domain.ID, in forms.Product) error
}

type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Save(ctx context.Context, id domain.ID, in forms.Category) error
}

type productSeed struct {
	Name        string
	Description string
	Price       string
	Stock       int
	Category    string
}

var categories = []forms.Category{
	{Name: "Cozinha", Description: "Utensílios e louças"},
	{Name: "Roupas", Description: "Camisetas e acessórios"},
}

var products = []productSeed{
	{Name: "Caneca GuaraShopp", Description: "Caneca de cerâmica 300ml", Price: "29,90", Stock: 25, Category: "Cozinha"},
	{Name: "Avental Listrado", Description: "Avental de algodão", Price: "49,90", Stock: 10, Category: "Cozinha"},
	{Name: "Camiseta Logo", Description: "Camiseta 100% algodão", Price: "59,90", Stock: 40, Category: "Roupas"},
	{Name: "Boné Verde", Description: "Boné ajustável", Price: "39,00", Stock: 0, Category: "Roupas"},
}

// Apply creates the demo catalog through the admin API. Existing categories
// and products are matched by name and left untouched.
func Apply(ctx context.Context, cats CategoryStore, prods ProductStore) (int, error) {
	catIDs, err := categoryIndex(ctx, cats)
	if err != nil {
		return 0, err
	}
	created := 0
	for _, c := range categories {
		if _, ok := catIDs[key(c.Name)]; ok {
			continue
		}
		if err := cats.Save(ctx, "", c); err != nil {
			return created, fmt.Errorf("create category %s: %w", c.Name, err)
		}
		created++
	}
	if created > 0 {
		if catIDs, err = categoryIndex(ctx, cats); err != nil {
			return created, err
		}
	}

	existing, err := prods.List(ctx)
	if err != nil {
		return created, fmt.Errorf("list products: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, p := range existing {
		have[key(p.Name)] = true
	}
	for _, p := range products {
		if have[key(p.Name)] {
			continue
		}
		catID, ok := catIDs[key(p.Category)]
		if !ok {
			return created, fmt.Errorf("category %s missing after seeding", p.Category)
		}
		err := prods.Save(ctx, "", forms.Product{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
			CategoryID:  catID.String(),
		})
		if err != nil {
			return created, fmt.Errorf("create product %s: %w", p.Name, err)
		}
		created++
	}
	return created, nil
}

func categoryIndex(ctx context.Context, cats CategoryStore) (map[string]domain.ID, error) {
	list, err := cats.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make(map[string]domain.ID, len(list))
	for _, c := range list {
		out[key(c.Name)] = c.ID
	}
	return out, nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
