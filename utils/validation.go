package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`\S+@\S+\.\S+`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var validate = validator.New()

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// MaskTail hides all but the last keep characters of a value, for rendering
// payment references in admin email.
func MaskTail(value string, keep int) string {
	if value == "" {
		return ""
	}
	if len(value) <= keep {
		return value
	}
	return strings.Repeat("*", len(value)-keep) + value[len(value)-keep:]
}
