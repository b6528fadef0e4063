package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired   = "is required"
	ErrMinValue   = "must be at least %s"
	ErrMaxValue   = "must be at most %s"
	ErrMinItems   = "must contain at least %s items"
	ErrMaxItems   = "must contain at most %s items"
	ErrMinLength  = "must be at least %s characters long"
	ErrMaxLength  = "must be at most %s characters long"
	ErrNotBlank   = "must not be blank"
	ErrFutureTime = "must not be in the past"
	ErrInvalid    = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("notblank", validateNotBlank)
	validator.RegisterValidation("notpast", validateNotPast)

	return validator
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateNotPast(fl validator.FieldLevel) bool {
	showTime, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}

	return !showTime.Before(time.Now())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	isCollection := err.Kind().String() == "slice" || err.Kind().String() == "array"
	isText := err.Kind().String() == "string"

	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min", "gte":
		if isCollection {
			return fmt.Sprintf(ErrMinItems, err.Param())
		}
		if isText {
			return fmt.Sprintf(ErrMinLength, err.Param())
		}
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max", "lte":
		if isCollection {
			return fmt.Sprintf(ErrMaxItems, err.Param())
		}
		if isText {
			return fmt.Sprintf(ErrMaxLength, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "notblank":
		return ErrNotBlank
	case "notpast":
		return ErrFutureTime
	default:
		return ErrInvalid
	}
}
