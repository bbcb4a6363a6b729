package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validatePayload runs the struct tags of payload. Any failed rule is reported
// as missing, because Go already fixes the field types at compile time.
func validatePayload(payload any, missing *Error) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return err
	}
	return missing
}
