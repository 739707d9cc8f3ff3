package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ReadAndValidateRequest binds query/body parameters into req, fills
// declared defaults, and validates the struct. Returns an error message
// suitable for a 400 body, or "" when the request is valid.
func ReadAndValidateRequest(c echo.Context, req interface{}) string {
	if err := c.Bind(req); err != nil {
		return bindErrorMessage(err)
	}

	if err := defaults.Set(req); err != nil {
		return bindErrorMessage(err)
	}

	if err := validate.StructCtx(c.Request().Context(), req); err != nil {
		return bindErrorMessage(err)
	}

	return ""
}

func bindErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fieldErrorMessage(e))
		}
		return strings.Join(msgs, "; ")
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprintf("%v", he.Message)
	}

	return err.Error()
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
