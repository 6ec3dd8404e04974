package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Имя/фамилия: буквы, пробел, дефис, апостроф.
var personNameRe = regexp.MustCompile(`^[A-Za-z\s'-]+$`)

var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	})
	return v
}
