package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidationError is the first failing field of a form, with a message ready for display.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	once     sync.Once
	validate *validator.Validate
	// now is replaced in tests that check card expiry.
	now = time.Now
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("phone_br", func(fl validator.FieldLevel) bool {
			n := len(Digits(fl.Field().String()))
			return n == 10 || n == 11
		})
		_ = v.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
			return len(Digits(fl.Field().String())) == 8
		})
		_ = v.RegisterValidation("card_number", func(fl validator.FieldLevel) bool {
			return len(Digits(fl.Field().String())) == 16
		})
		_ = v.RegisterValidation("card_expiry", func(fl validator.FieldLevel) bool {
			return ValidExpiry(fl.Field().String())
		})
		_ = v.RegisterValidation("cvv", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return len(s) >= 3 && len(s) <= 4 && Digits(s) == s
		})
		_ = v.RegisterValidation("reset_code", func(fl validator.FieldLevel) bool {
			s := strings.TrimSpace(fl.Field().String())
			return len(s) == 6 && Digits(s) == s
		})
		validate = v
	})
	return validate
}

// Validate checks v's struct tags and returns a *ValidationError for the first failure.
func Validate(v any) error {
	err := engine().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório.", fe.Field())
	case "email":
		return "Informe um email válido."
	case "min":
		if fe.Field() == "senha" || fe.Field() == "newPassword" {
			return "A senha deve ter pelo menos " + fe.Param() + " caracteres."
		}
		return fmt.Sprintf("O campo %s deve ter pelo menos %s caracteres.", fe.Field(), fe.Param())
	case "eqfield":
		return "As senhas não coincidem."
	case "phone_br":
		return "O número de telefone deve ter 10 ou 11 dígitos."
	case "cep":
		return "O CEP deve ter 8 dígitos."
	case "card_number":
		return "O número do cartão deve ter 16 dígitos."
	case "card_expiry":
		return "Data de validade inválida ou expirada."
	case "cvv":
		return "O CVV deve ter 3 ou 4 dígitos."
	case "reset_code":
		return "O código deve ter 6 dígitos."
	case "oneof":
		return fmt.Sprintf("Valor inválido para %s.", fe.Field())
	}
	return fmt.Sprintf("Valor inválido para %s.", fe.Field())
}

// ValidExpiry accepts MM/AAAA not earlier than the current month.
func ValidExpiry(s string) bool {
	month, year, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok || len(month) != 2 || len(year) != 4 {
		return false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return false
	}
	t := now()
	if y != t.Year() {
		return y > t.Year()
	}
	return m >= int(t.Month())
}
