package cart

import (
	"context"
	"fmt"
	"net/url"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
)

type restRepo struct {
	api *apiclient.Client
}

func NewREST(api *apiclient.Client) Repository {
	return &restRepo{api: api}
}

func (r *restRepo) Get(ctx context.Context, userID domain.ID) (*domain.Cart, error) {
	var out domain.Cart
	if err := r.api.Get(ctx, basePath(userID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *restRepo) AddItem(ctx context.Context, userID, productID domain.ID, quantity int) (*domain.CartLine, error) {
	body := struct {
		ProductID domain.ID `json:"produtoId"`
		Quantity  int       `json:"quantidade"`
	}{productID, quantity}
	var out domain.CartLine
	if err := r.api.Post(ctx, basePath(userID)+"/item", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *restRepo) UpdateItem(ctx context.Context, userID, itemID domain.ID, quantity int) (*domain.CartLine, error) {
	body := struct {
		Quantity int `json:"quantidade"`
	}{quantity}
	var out domain.CartLine
	if err := r.api.Patch(ctx, itemPath(userID, itemID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *restRepo) RemoveItem(ctx context.Context, userID, itemID domain.ID) error {
	return r.api.Delete(ctx, itemPath(userID, itemID), nil)
}

func (r *restRepo) Clear(ctx context.Context, userID domain.ID) error {
	return r.api.Delete(ctx, basePath(userID)+"/limpar", nil)
}

func basePath(userID domain.ID) string {
	return "/carrinho/" + url.PathEscape(userID.String())
}

func itemPath(userID, itemID domain.ID) string {
	return fmt.Sprintf("%s/item/%s", basePath(userID), url.PathEscape(itemID.String()))
}
