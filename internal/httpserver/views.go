package httpserver

import (
	"github.com/shopspring/decimal"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/service/customer"
)

type cartLineView struct {
	ID        domain.ID       `json:"id"`
	ProductID domain.ID       `json:"produtoId"`
	Name      string          `json:"nome"`
	Image     string          `json:"imagem,omitempty"`
	UnitPrice decimal.Decimal `json:"preco"`
	Stock     int             `json:"estoque"`
	Quantity  int             `json:"quantidade"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Pending   bool            `json:"pendente"`
}

// cartView is what the drawer renders. Total is always derived from the lines.
type cartView struct {
	ID       domain.ID       `json:"id,omitempty"`
	Items    []cartLineView  `json:"itens"`
	Quantity int             `json:"quantidade"`
	Total    decimal.Decimal `json:"total"`
}

func toCartView(cart domain.Cart) cartView {
	lines := make([]cartLineView, 0, len(cart.Items))
	for _, l := range cart.Items {
		lines = append(lines, cartLineView{
			ID:        l.ID,
			ProductID: l.ProductKey(),
			Name:      l.Product.Name,
			Image:     l.Product.Image,
			UnitPrice: l.Product.Price,
			Stock:     l.Product.Stock,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
			Pending:   l.Temporary(),
		})
	}
	return cartView{
		ID:       cart.ID,
		Items:    lines,
		Quantity: cart.Quantity(),
		Total:    cart.ItemsTotal(),
	}
}

type sessionView struct {
	State   customer.State `json:"state"`
	User    *domain.User   `json:"user"`
	Role    domain.Role    `json:"role"`
	IsAdmin bool           `json:"isAdmin"`
}

func toSessionView(s *customer.Service) sessionView {
	return sessionView{
		State:   s.State(),
		User:    s.User(),
		Role:    s.Role(),
		IsAdmin: s.IsAdmin(),
	}
}
