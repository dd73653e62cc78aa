package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"hr-chatbot-be/internal/pkg/apperrors"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a parsed request body and
// wraps failures as validation errors for the error-handler middleware.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}
	return nil
}
