package middleware

import (
	"trivia/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	ValidatedIDKey   = "validated_id"
	ValidatedPageKey = "validated_page"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateID parses the :id path parameter; field names it in error details.
func (vm *ValidationMiddleware) ValidateID(field string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := vm.validator.ParseID(field, c.Params("id"))
		if err != nil {
			return err // handled by ErrorHandler
		}
		c.Locals(ValidatedIDKey, id)
		return c.Next()
	}
}

// ValidatePage stores the page query value, defaulting to 1.
func (vm *ValidationMiddleware) ValidatePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(ValidatedPageKey, vm.validator.ParsePage(c.Query("page")))
		return c.Next()
	}
}

// ValidatedID returns the id stored by ValidateID.
func ValidatedID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(ValidatedIDKey).(int64)
	return id
}

// ValidatedPage returns the page stored by ValidatePage, 1 when absent.
func ValidatedPage(c *fiber.Ctx) int {
	if page, ok := c.Locals(ValidatedPageKey).(int); ok {
		return page
	}
	return 1
}
