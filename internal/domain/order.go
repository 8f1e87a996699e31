package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDENTE"
	OrderPaid      OrderStatus = "PAGO"
	OrderCancelled OrderStatus = "CANCELADO"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "cartao"
	PaymentPix    PaymentMethod = "pix"
	PaymentBoleto PaymentMethod = "boleto"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentPix, PaymentBoleto:
		return true
	}
	return false
}

type Payment struct {
	Method PaymentMethod `json:"metodo,omitempty"`
	Status string        `json:"status,omitempty"`
}

type Order struct {
	ID              ID              `json:"id,omitempty"`
	Customer        *User           `json:"cliente,omitempty"`
	Items           []CartLine      `json:"itens,omitempty"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status,omitempty"`
	ShippingAddress *Address        `json:"enderecoEntrega,omitempty"`
	PaymentMethod   PaymentMethod   `json:"metodoPagamento,omitempty"`
	Payment         *Payment        `json:"pagamento,omitempty"`
	CreatedAt       *time.Time      `json:"createdAt,omitempty"`
}

// NewOrder is the checkout payload for POST /pedidos.
type NewOrder struct {
	UserID          ID              `json:"userId"`
	Items           []CartLine      `json:"itens"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress *Address        `json:"enderecoEntrega"`
	PaymentMethod   PaymentMethod   `json:"metodoPagamento"`
}
