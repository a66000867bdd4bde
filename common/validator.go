package common

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateInput checks the validate tags on a prompt-collected request struct
// and returns the validation errors in their printable form.
func ValidateInput(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return validationErrors
		}
		return err
	}
	return nil
}
