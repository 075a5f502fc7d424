package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// hexRGB matches a full six-digit hex color, e.g. "#1a2b3c". Short #RGB forms
// are rejected on purpose.
var hexRGB = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func registerCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("hexrgb", func(fl validator.FieldLevel) bool {
		return hexRGB.MatchString(fl.Field().String())
	})
}
