package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
)

func getSession(c *gin.Context) {
	ok(c, http.StatusOK, toSessionView(ws(c).Session))
}

func login(c *gin.Context) {
	var in forms.Login
	if !bind(c, &in) {
		return
	}
	w := ws(c)
	if _, err := w.Session.Login(c.Request.Context(), in); err != nil {
		failWithAlert(c, err)
		return
	}
	// The cart of the new user replaces whatever the visitor had.
	if err := w.Cart.Fetch(c.Request.Context()); err != nil {
		w.Alerts.Error(titleError, "Erro ao carregar o carrinho.")
	}
	okWithAlert(c, http.StatusOK, "Login realizado com sucesso.", toSessionView(w.Session))
}

func logout(c *gin.Context) {
	w := ws(c)
	w.Session.Logout(c.Request.Context())
	ok(c, http.StatusOK, toSessionView(w.Session))
}

func register(c *gin.Context) {
	var in forms.Registration
	if !bind(c, &in) {
		return
	}
	if err := ws(c).Session.Register(c.Request.Context(), in); err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusCreated, "Cadastro realizado com sucesso!", nil)
}

func forgotPassword(c *gin.Context) {
	var in forms.ForgotPassword
	if !bind(c, &in) {
		return
	}
	msg, err := ws(c).Session.ForgotPassword(c.Request.Context(), in)
	if err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusOK, msg, nil)
}

func resetPassword(c *gin.Context) {
	var in forms.ResetPassword
	if !bind(c, &in) {
		return
	}
	msg, err := ws(c).Session.ResetPassword(c.Request.Context(), in)
	if err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusOK, msg, nil)
}

func getProfile(c *gin.Context) {
	user, err := ws(c).Session.FetchClientData(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, http.StatusOK, user)
}

func updateProfile(c *gin.Context) {
	var in forms.Profile
	if !bind(c, &in) {
		return
	}
	user, err := ws(c).Session.UpdateClientData(c.Request.Context(), in)
	if err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusOK, "Dados atualizados com sucesso.", user)
}

func addAddress(c *gin.Context) {
	var in forms.Address
	if !bind(c, &in) {
		return
	}
	user, err := ws(c).Session.AddAddress(c.Request.Context(), in)
	if err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusCreated, "Endereço adicionado com sucesso!", user)
}

func updateAddress(c *gin.Context) {
	var in forms.Address
	if !bind(c, &in) {
		return
	}
	user, err := ws(c).Session.UpdateAddress(c.Request.Context(), domain.ID(c.Param("id")), in)
	if err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusOK, "Endereço atualizado com sucesso.", user)
}

func deleteAddress(c *gin.Context) {
	user, err := ws(c).Session.DeleteAddress(c.Request.Context(), domain.ID(c.Param("id")))
	if err != nil {
		failWithAlert(c, err)
		return
	}
	okWithAlert(c, http.StatusOK, "Endereço removido com sucesso.", user)
}
