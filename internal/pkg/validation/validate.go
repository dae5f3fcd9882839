// Package validation checks outgoing request payloads before they reach the
// wire, so obvious mistakes surface as field errors instead of a 400 round
// trip.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/okul/schoolhub/internal/pkg/apperrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError describes one failed field check.
type FieldError struct {
	Field string
	Rule  string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: failed %q", e.Field, e.Rule)
}

// Struct validates a payload against its validate tags. The returned error
// wraps apperrors.ErrValidationFailed and lists every failed field.
func Struct(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, FieldError{Field: fe.Field(), Rule: fe.Tag()}.Error())
	}
	return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, strings.Join(parts, "; "))
}
