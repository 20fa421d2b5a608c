// Package validation registers the custom binding rules used by request DTOs.
package validation

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var errUnexpectedEngine = errors.New("gin binding engine is not validator/v10")

// Register must run before the router serves requests.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errUnexpectedEngine
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	return v.RegisterValidation("notblank", notBlank)
}

// notBlank rejects strings made only of whitespace; "required" alone lets "  " through.
func notBlank(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}
