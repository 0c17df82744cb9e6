package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func GetValidator() *validator.Validate {
	return validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func FormatValidationErrors(err error) []ValidationError {
	var errors []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			var message string

			switch fieldError.Tag() {
			case "required":
				message = fieldError.Field() + " is required"
			case "min":
				message = fieldError.Field() + " must be at least " + fieldError.Param()
			case "max":
				message = fieldError.Field() + " must be at most " + fieldError.Param()
			case "oneof":
				message = fieldError.Field() + " must be one of: " + fieldError.Param()
			default:
				message = fieldError.Field() + " is invalid"
			}

			errors = append(errors, ValidationError{
				Field:   fieldError.Field(),
				Message: message,
			})
		}
	}

	return errors
}

// ValidationMessage flattens validator errors into the single message the
// response envelope carries.
func ValidationMessage(err error) string {
	formatted := FormatValidationErrors(err)
	if len(formatted) == 0 {
		return "Validation failed"
	}

	messages := make([]string, 0, len(formatted))
	for _, fieldError := range formatted {
		messages = append(messages, fieldError.Message)
	}
	return strings.Join(messages, "; ")
}

type Validator interface {
	Validate() error
}
