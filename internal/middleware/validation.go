package middleware

import (
	"github.com/gofiber/fiber/v2"

	"quiz-scribe/internal/domain"
	"quiz-scribe/internal/dto"
	"quiz-scribe/internal/validation"
)

const (
	LocalsGenerateRequest = "validated_generate_request"
	LocalsRunsLimit       = "validated_limit"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: validator}
}

// ValidateGenerateQuizRequest parses the JSON body and stores the request in Locals.
func (vm *ValidationMiddleware) ValidateGenerateQuizRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.GenerateQuizRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}
		if errs := vm.validator.ValidateGenerateQuizRequest(&req); len(errs) > 0 {
			return errs
		}
		c.Locals(LocalsGenerateRequest, &req)
		return c.Next()
	}
}

// ValidateRunsLimit validates the limit query parameter.
func (vm *ValidationMiddleware) ValidateRunsLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, errs := vm.validator.ParseRunsLimit(c.Query("limit"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(LocalsRunsLimit, limit)
		return c.Next()
	}
}
