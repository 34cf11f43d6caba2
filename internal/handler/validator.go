package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/nt-jambaa/toktok-mini-game/internal/domain"
)

// Validator checks request bodies against their validate tags
type Validator struct {
	validate *validator.Validate
}

var (
	requestValidator *Validator
	validatorOnce    sync.Once
)

// GetValidator returns the shared request validator
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON names so clients can map errors back to their payload
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("timemode", validateTimeMode)
		requestValidator = &Validator{validate: v}
	})
	return requestValidator
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validator errors into field -> message pairs
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": "Invalid request format"}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = fieldMessage(e)
	}
	return fields
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "timemode":
		return ErrMsgInvalidModeError
	case "max":
		return fmt.Sprintf("Must be at most %s characters", e.Param())
	default:
		return "Invalid value"
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name)
	}
	return name
}

func validateTimeMode(fl validator.FieldLevel) bool {
	return domain.TimeMode(strings.ToLower(fl.Field().String())).Valid()
}
