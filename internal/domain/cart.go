package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const tempLinePrefix = "temp-"

// Cart mirrors GET /carrinho/{userId}. An empty ID means no cart is known yet.
type Cart struct {
	ID    ID              `json:"id,omitempty"`
	Items []CartLine      `json:"itens"`
	Total decimal.Decimal `json:"total"`
}

// ItemsTotal is the sum of unit price times quantity over the lines, always
// recomputed from Items rather than read from Total.
func (c Cart) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c.Items {
		sum = sum.Add(line.Subtotal())
	}
	return sum
}

// Quantity is the number of units across all lines.
func (c Cart) Quantity() int {
	n := 0
	for _, line := range c.Items {
		n += line.Quantity
	}
	return n
}

type CartLine struct {
	ID        ID      `json:"id"`
	ProductID ID      `json:"produtoId,omitempty"`
	Quantity  int     `json:"quantidade"`
	Product   Product `json:"produto"`
}

// ProductKey identifies the product a line belongs to.
func (l CartLine) ProductKey() ID {
	if l.ProductID != "" {
		return l.ProductID
	}
	return l.Product.ID
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Temporary reports whether the line still carries a client-generated id.
func (l CartLine) Temporary() bool {
	return strings.HasPrefix(string(l.ID), tempLinePrefix)
}

// TempLineID is the placeholder id of a line awaiting server confirmation.
func TempLineID(productID ID) ID {
	return ID(tempLinePrefix + string(productID))
}
