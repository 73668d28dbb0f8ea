package models

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var lifespanPattern = regexp.MustCompile(`^\d{4}-(\d{4})?$`)

// NewValidator returns a validator that understands the author tags
// "familyname" and "lifespan". Open-ended lifespans ("1947-") are accepted
// for living authors.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("familyname", func(fl validator.FieldLevel) bool {
		return FamilyName(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("lifespan", func(fl validator.FieldLevel) bool {
		return lifespanPattern.MatchString(fl.Field().String())
	})
	return v
}
