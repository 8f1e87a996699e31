package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"guarashopp-storefront/internal/domain"
)

type addItemRequest struct {
	ProductID domain.ID `json:"produtoId"`
	Quantity  int       `json:"quantidade"`
}

type updateItemRequest struct {
	Quantity int `json:"quantidade"`
}

// getCart loads the server cart on the first read after a restored session.
func getCart(c *gin.Context) {
	w := ws(c)
	if err := w.Cart.Sync(c.Request.Context()); err != nil {
		failWithAlert(c, err)
		return
	}
	ok(c, http.StatusOK, toCartView(w.Cart.Snapshot()))
}

func refreshCart(c *gin.Context) {
	w := ws(c)
	if err := w.Cart.Fetch(c.Request.Context()); err != nil {
		failWithAlert(c, err)
		return
	}
	ok(c, http.StatusOK, toCartView(w.Cart.Snapshot()))
}

// addCartItem reads the product first so the stock check runs on fresh data.
func addCartItem(c *gin.Context) {
	var in addItemRequest
	if !bind(c, &in) {
		return
	}
	if in.ProductID == "" {
		writeError(c, domain.ErrNotFound)
		return
	}
	w := ws(c)
	product, err := w.Products.Get(c.Request.Context(), in.ProductID)
	if err != nil {
		failWithAlert(c, err)
		return
	}
	if _, err := w.Cart.AddWithStock(c.Request.Context(), *product, in.Quantity); err != nil {
		failWithAlert(c, err)
		return
	}
	w.Layout.ShowCart()
	okWithAlert(c, http.StatusOK, "Produto adicionado ao carrinho.", toCartView(w.Cart.Snapshot()))
}

func updateCartItem(c *gin.Context) {
	var in updateItemRequest
	if !bind(c, &in) {
		return
	}
	w := ws(c)
	if _, err := w.Cart.UpdateItem(c.Request.Context(), domain.ID(c.Param("id")), in.Quantity); err != nil {
		failWithAlert(c, err)
		return
	}
	ok(c, http.StatusOK, toCartView(w.Cart.Snapshot()))
}

func removeCartItem(c *gin.Context) {
	w := ws(c)
	if err := w.Cart.RemoveItem(c.Request.Context(), domain.ID(c.Param("id"))); err != nil {
		failWithAlert(c, err)
		return
	}
	ok(c, http.StatusOK, toCartView(w.Cart.Snapshot()))
}

func clearCart(c *gin.Context) {
	w := ws(c)
	if err := w.Cart.Clear(c.Request.Context()); err != nil {
		failWithAlert(c, err)
		return
	}
	ok(c, http.StatusOK, toCartView(w.Cart.Snapshot()))
}
