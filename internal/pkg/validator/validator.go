package validator

import (
	"strings"

	validatorlib "github.com/go-playground/validator/v10"
)

var validate = validatorlib.New(validatorlib.WithRequiredStructEnabled())

// Struct validates a request DTO against its `validate` tags and returns a
// field→message map suitable for the response envelope's data payload, or
// nil when the struct is valid.
func Struct(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validatorlib.ValidationErrors)
	if !ok {
		return map[string]string{"_": "invalid payload"}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldName(fe)] = messageFor(fe)
	}
	return out
}

func fieldName(fe validatorlib.FieldError) string {
	f := fe.Field()
	if f == "" {
		return "_"
	}
	return strings.ToLower(f[:1]) + f[1:]
}

func messageFor(fe validatorlib.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "eqfield":
		return "must match " + strings.ToLower(fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
