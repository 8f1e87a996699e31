package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
	"guarashopp-storefront/internal/service/checkout"
	"guarashopp-storefront/internal/service/customer"
)

const (
	titleNotice = "Aviso!"
	titleError  = "Erro!"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func errorBody(message string) errorResponse {
	return errorResponse{Message: message}
}

func statusOf(err error) int {
	var vErr *forms.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotAuthenticated), errors.Is(err, customer.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, customer.ErrAccountDisabled):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStockExceeded), errors.Is(err, domain.ErrLinePending),
		errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrNoDefaultAddress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, checkout.ErrInvalidPaymentMethod),
		errors.Is(err, customer.ErrLoginRejected):
		return http.StatusBadRequest
	case errors.Is(err, customer.ErrInvalidResponse), errors.Is(err, customer.ErrLoginUnavailable):
		return http.StatusBadGateway
	}
	if status := apiclient.StatusOf(err); status != 0 {
		if status >= 400 && status < 500 {
			return status
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// msgOf picks the text shown to the visitor.
func msgOf(err error) string {
	var (
		failure *domain.Failure
		vErr    *forms.ValidationError
		stock   *domain.StockError
	)
	switch {
	case errors.As(err, &failure):
		return failure.Message
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.As(err, &stock):
		return stock.Error()
	}
	for _, known := range []error{
		domain.ErrNotAuthenticated, domain.ErrForbidden, domain.ErrNotFound,
		domain.ErrInvalidQuantity, domain.ErrStockExceeded, domain.ErrLinePending,
		domain.ErrEmptyCart, domain.ErrNoDefaultAddress,
	} {
		if errors.Is(err, known) {
			return capitalize(known.Error())
		}
	}
	if apiclient.StatusOf(err) != 0 {
		return apiclient.MessageOr(err, "Erro de comunicação com o servidor.")
	}
	return "Erro de conexão com o servidor. Tente novamente."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r) + "."
}

// writeError answers with the mapped status and message.
func writeError(c *gin.Context, err error) {
	body := errorBody(msgOf(err))
	var vErr *forms.ValidationError
	if errors.As(err, &vErr) {
		body.Field = vErr.Field
	}
	c.JSON(statusOf(err), body)
}

// failWithAlert also queues the message as an error toast for the visitor.
func failWithAlert(c *gin.Context, err error) {
	ws(c).Alerts.Error(titleError, msgOf(err))
	writeError(c, err)
}

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// okWithAlert answers and queues message as a success toast.
func okWithAlert(c *gin.Context, status int, message string, data any) {
	ws(c).Alerts.Success(titleNotice, message)
	c.JSON(status, gin.H{"success": true, "message": message, "data": data})
}

// bind decodes the JSON body; a malformed body is a 400.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("Requisição inválida."))
		return false
	}
	return true
}
