package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("registro não encontrado")
	// ErrNotAuthenticated is returned when an operation needs a logged-in user.
	ErrNotAuthenticated = errors.New("usuário não autenticado")
	// ErrForbidden is returned when the session role cannot perform the operation.
	ErrForbidden = errors.New("acesso restrito a administradores")
	// ErrInvalidQuantity rejects quantities below one.
	ErrInvalidQuantity = errors.New("a quantidade deve ser um número inteiro maior que zero")
	// ErrStockExceeded is the client-side stock pre-check failure.
	ErrStockExceeded = errors.New("quantidade solicitada excede o estoque disponível")
	// ErrLinePending rejects edits to a line that the server has not confirmed yet.
	ErrLinePending = errors.New("o item ainda está sendo adicionado ao carrinho")
	// ErrEmptyCart blocks checkout of an empty cart.
	ErrEmptyCart = errors.New("seu carrinho está vazio")
	// ErrNoDefaultAddress blocks checkout without a default delivery address.
	ErrNoDefaultAddress = errors.New("não é possível finalizar a compra sem um endereço padrão")
)

// StockError describes a rejected add or quantity change.
type StockError struct {
	Product   string
	Stock     int
	InCart    int
	Requested int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para %s: disponível %d, no carrinho %d, solicitado %d",
		e.Product, e.Stock, e.InCart, e.Requested)
}

func (e *StockError) Is(target error) bool {
	return target == ErrStockExceeded
}

// Failure wraps Err with a message meant for display.
type Failure struct {
	Err     error
	Message string
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Err }

func Fail(err error, message string) error {
	return &Failure{Err: err, Message: message}
}
