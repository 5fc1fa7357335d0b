package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates a request DTO and returns a client-facing error message
// for the first failing field.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.New("invalid request")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return errors.New(fe.Field() + " is required")
	case "email":
		return errors.New(fe.Field() + " must be a valid email address")
	case "oneof":
		return errors.New(fe.Field() + " must be one of: " + fe.Param())
	case "min":
		return errors.New(fe.Field() + " must be at least " + fe.Param())
	case "gte":
		return errors.New(fe.Field() + " must be at least " + fe.Param())
	case "gt":
		return errors.New(fe.Field() + " must be greater than " + fe.Param())
	default:
		return errors.New(fe.Field() + " is invalid")
	}
}
