// Package validation provides request validation rules built on jellydator/validation.
package validation

import (
	"encoding/base64"
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/passcrypt/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Base64 validates that a string is standard padded base64. Empty strings pass.
var Base64 = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := base64.StdEncoding.DecodeString(s)
		return err == nil
	},
	validation.NewError("validation_base64", "must be valid base64-encoded data"),
)

// OneOf validates that a string-like value is one of values. Empty strings pass, so
// combine with validation.Required when the field is mandatory.
func OneOf[T ~string](values ...T) validation.Rule {
	allowed := make([]string, len(values))
	for i, v := range values {
		allowed[i] = string(v)
	}

	return validation.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return validation.NewError("validation_one_of_type", "must be a string")
		}
		if s == "" {
			return nil
		}
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return validation.NewError(
			"validation_one_of",
			fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		)
	})
}
