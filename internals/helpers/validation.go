package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationErrorMap flattens validator errors into the field→message map the
// API returns on 400s.
func ValidationErrorMap(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["non_field_errors"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		field := snakeCase(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "This field is required."
		case "max":
			out[field] = fmt.Sprintf("Must be at most %s characters.", fe.Param())
		case "min":
			out[field] = fmt.Sprintf("Must be at least %s characters.", fe.Param())
		case "email":
			out[field] = "Enter a valid email address."
		case "url":
			out[field] = "Enter a valid URL."
		case "oneof":
			out[field] = fmt.Sprintf("Must be one of: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
		default:
			out[field] = fmt.Sprintf("Invalid value (%s).", fe.Tag())
		}
	}
	return out
}

// JsonValidationError writes the 400 response for a failed validation.
func JsonValidationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": ValidationErrorMap(err),
	})
}

// FieldError builds the same shape for a single hand-rolled rule.
func FieldError(c *fiber.Ctx, field, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": map[string]string{field: message},
	})
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
