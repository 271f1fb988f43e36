package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

func init() {
	// Report validation failures under the JSON key, not the Go field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// FieldErrorsFromBinding converts a Gin binding failure into a structured
// list of field errors. Schema violations name the offending key; anything
// else (malformed JSON, non-object body) is reported as a bad body.
func FieldErrorsFromBinding(err error) FieldValidationErrors {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := make(FieldValidationErrors, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, FieldValidationError{
				Field:   fe.Field(),
				Message: messageForTag(fe),
			})
		}
		return fieldErrors
	}
	return FieldValidationErrors{
		{Field: "body", Message: "body of request contained bad or no data"},
	}
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
