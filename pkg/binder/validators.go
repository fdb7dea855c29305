package binder

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var timestampRE = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[0-1]) ([0-1][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)

// timestampValidator ensures the value matches the loan-record format
// YYYY-MM-DD HH:MM:SS or the empty string. The empty string is allowed so the
// validator can be used on optional fields; add `required` to the validate
// tag when the value must be present.
func timestampValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return timestampRE.MatchString(value)
}
