package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/LondonTravel_Go/internal/domain"
)

// Validator checks manage form submissions against their validate tags
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	validate      *Validator
)

// GetValidator returns the shared validator, registering the custom "line"
// tag on first use
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("line", validateLine); err != nil {
			panic(err)
		}
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError maps each failing field, by its JSON name, to a
// message that can be shown next to the form input
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": "Invalid request format"}
	}

	errs := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		errs[e.Field()] = validationMessage(e)
	}
	return errs
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "line":
		return fmt.Sprintf("Unknown line %q", e.Value())
	case "uuid":
		return "Must be a UUID"
	case "max":
		return fmt.Sprintf("Must contain at most %s items", e.Param())
	case "unique":
		return "Must not contain duplicates"
	default:
		return "Invalid value"
	}
}

// jsonFieldName reports fields the way the client sent them
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// validateLine checks a line ID against the catalog
func validateLine(fl validator.FieldLevel) bool {
	return domain.IsValidLine(fl.Field().String())
}
