package http

import (
	"errors"
	"fmt"
	"strings"

	"fieldops/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps go-playground/validator so echo can call c.Validate.
// It only checks request shape; domain rules stay in the domain.
type echoValidator struct {
	v *validator.Validate
}

func NewValidator() echo.Validator {
	return &echoValidator{v: validator.New()}
}

// Validate reports the first problem of each field as a ValueIsInvalid error
// so the error handler answers 400.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return errs.NewValueIsInvalidErrorWithCause("request", errors.New(strings.Join(msgs, "; ")))
}

func fieldError(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "uuid":
		return field + " must be a UUID"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
