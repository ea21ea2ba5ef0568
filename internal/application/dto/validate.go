package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bdas-dva/retail-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names so messages match what the client sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the validate tags of a request struct and returns a
// *domain.ValidationError with a Czech message for the first failure.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.NewValidation("neplatný požadavek: %v", err)
	}
	return domain.NewValidation("%s", fieldMessage(verrs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("pole '%s' je povinné", field)
	case "email":
		return fmt.Sprintf("pole '%s' musí obsahovat platný e-mail", field)
	case "min":
		return fmt.Sprintf("pole '%s' je příliš krátké (min. %s)", field, fe.Param())
	case "max":
		return fmt.Sprintf("pole '%s' je příliš dlouhé (max. %s)", field, fe.Param())
	case "gt":
		return fmt.Sprintf("pole '%s' musí být větší než %s", field, fe.Param())
	default:
		return fmt.Sprintf("pole '%s' má neplatnou hodnotu", field)
	}
}
