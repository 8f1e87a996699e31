package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
	"guarashopp-storefront/internal/service/checkout"
)

func myOrders(c *gin.Context) {
	orders, err := ws(c).Orders.MyOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, orders)
}

func paymentMethods(c *gin.Context) {
	ok(c, http.StatusOK, ws(c).Orders.PaymentMethods(c.Request.Context()))
}

func changePaymentMethod(c *gin.Context) {
	var in forms.PaymentChange
	if !bind(c, &in) {
		return
	}
	if err := ws(c).Orders.ChangePaymentMethod(c.Request.Context(), domain.ID(c.Param("id")), in); err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusOK, "Forma de pagamento alterada com sucesso.", nil)
}

func cancelOrder(c *gin.Context) {
	var in forms.Cancellation
	if !bind(c, &in) {
		return
	}
	if err := ws(c).Orders.Cancel(c.Request.Context(), domain.ID(c.Param("id")), in); err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusOK, "Pedido cancelado com sucesso.", nil)
}

func placeOrder(c *gin.Context) {
	var in checkout.Request
	if !bind(c, &in) {
		return
	}
	w := ws(c)
	order, err := w.Checkout.Place(c.Request.Context(), in)
	if err != nil {
		failWithAlert(c, err)
		return
	}
	w.Layout.HideCart()
	okWithAlert(c, http.StatusCreated, "Compra finalizada com sucesso!", order)
}

func allOrders(c *gin.Context) {
	orders, err := ws(c).Orders.AllOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, orders)
}
