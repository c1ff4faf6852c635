package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterBindingValidations installs the custom validations referenced by the
// binding tags in this package on the given validator engine.
func RegisterBindingValidations(v *validator.Validate) error {
	return v.RegisterValidation("notblank", notBlank)
}

// notBlank rejects strings that are empty once surrounding whitespace is
// stripped. Natural keys go through a trim transform before storage, so a
// whitespace-only key would otherwise collapse to the empty string.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
