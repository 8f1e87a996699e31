package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"guarashopp-storefront/internal/service/alert"
)

func drawerState(c *gin.Context, visible bool) {
	ok(c, http.StatusOK, gin.H{"visible": visible})
}

func getCartDrawer(c *gin.Context) {
	drawerState(c, ws(c).Layout.CartVisible())
}

func showCartDrawer(c *gin.Context) {
	l := ws(c).Layout
	l.ShowCart()
	drawerState(c, l.CartVisible())
}

func hideCartDrawer(c *gin.Context) {
	l := ws(c).Layout
	l.HideCart()
	drawerState(c, l.CartVisible())
}

func toggleCartDrawer(c *gin.Context) {
	drawerState(c, ws(c).Layout.ToggleCart())
}

func listAlerts(c *gin.Context) {
	ok(c, http.StatusOK, ws(c).Alerts.List())
}

func showAlert(c *gin.Context) {
	var in alert.Alert
	if !bind(c, &in) {
		return
	}
	if in.Message == "" {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Message: "Informe a mensagem do alerta.", Field: "message"})
		return
	}
	ok(c, http.StatusCreated, ws(c).Alerts.Show(in))
}

func hideAlert(c *gin.Context) {
	ws(c).Alerts.Hide(c.Param("id"))
	c.Status(http.StatusNoContent)
}
