package middleware

import (
	"strconv"

	"interview-prep/internal/domain"
	"interview-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// RequestBinder parses JSON bodies into DTOs and validates them.
type RequestBinder struct {
	validator *validation.Validator
}

func NewRequestBinder() *RequestBinder {
	return &RequestBinder{validator: validation.NewValidator()}
}

// BindJSON decodes the request body into out and runs struct validation.
// The returned error is handled by ErrorHandler.
func (b *RequestBinder) BindJSON(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewInvalidInputError("Invalid request body").WithContext("reason", err.Error())
	}
	return b.validator.Struct(out)
}

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError(name, raw)}
	}
	return id, nil
}
