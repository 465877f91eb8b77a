package services

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"strings"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrRefreshInProgress = errors.New("refresh already in progress")
)

// ValidationError reports caller input that was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

func newValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateStruct(value any) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	reasons := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		reasons = append(reasons, describeFieldError(fieldError))
	}
	return &ValidationError{Reason: strings.Join(reasons, "; ")}
}

func describeFieldError(fieldError validator.FieldError) string {
	field := fieldError.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fieldError.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fieldError.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, fieldError.Param())
	default:
		if fieldError.Param() != "" {
			return fmt.Sprintf("%s must satisfy %s=%s", field, fieldError.Tag(), fieldError.Param())
		}
		return fmt.Sprintf("%s must satisfy %s", field, fieldError.Tag())
	}
}
