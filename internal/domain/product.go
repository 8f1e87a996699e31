package domain

import "github.com/shopspring/decimal"

// Product is a catalog item as served by /produto. Cart lines embed a copy of
// it taken when the line was created; that copy is not refreshed.
type Product struct {
	ID          ID              `json:"id,omitempty"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao,omitempty"`
	Price       decimal.Decimal `json:"preco"`
	Stock       int             `json:"estoque"`
	Image       string          `json:"imagem,omitempty"`
	Active      bool            `json:"ativo"`
	Category    *Category       `json:"categoria,omitempty"`
}

// MergeProduct fills the fields the server left empty with the local snapshot.
func MergeProduct(local, server Product) Product {
	out := server
	if out.ID == "" {
		out.ID = local.ID
	}
	if out.Name == "" {
		out.Name = local.Name
	}
	if out.Description == "" {
		out.Description = local.Description
	}
	if out.Price.IsZero() {
		out.Price = local.Price
	}
	if out.Stock == 0 {
		out.Stock = local.Stock
	}
	if out.Image == "" {
		out.Image = local.Image
	}
	if !out.Active {
		out.Active = local.Active
	}
	if out.Category == nil {
		out.Category = local.Category
	}
	return out
}
