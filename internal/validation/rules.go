// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/keypanel/keypanel/internal/errors"
)

// TargetPlaceholder is the substitution marker a dispatch command format must carry.
const TargetPlaceholder = "${target}"

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// HasTargetPlaceholder validates that a command format contains the ${target} marker
var HasTargetPlaceholder = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.Contains(s, TargetPlaceholder)
	},
	validation.NewError("validation_target_placeholder", "must contain the ${target} placeholder"),
)
