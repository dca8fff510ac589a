package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired       = "is required"
	ErrMinLength      = "must be at least %s characters long"
	ErrMaxLength      = "must be at most %s characters long"
	ErrMinValue       = "must be greater than or equal to %s"
	ErrMaxValue       = "must be less than or equal to %s"
	ErrDefaultInvalid = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	// report fields under the names clients send
	validator.RegisterTagNameFunc(jsonFieldName)

	return validator
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		if isNumeric(err.Kind()) {
			return fmt.Sprintf(ErrMinValue, err.Param())
		}
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		if isNumeric(err.Kind()) {
			return fmt.Sprintf(ErrMaxValue, err.Param())
		}
		return fmt.Sprintf(ErrMaxLength, err.Param())
	default:
		return ErrDefaultInvalid
	}
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
