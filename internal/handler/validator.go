package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PhoneTycoon_Go/internal/user"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New()

		// Report json names instead of Go field names
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("userid", validateUserIDTag)
		_ = v.RegisterValidation("printable", validatePrintable)

		validate = &Validator{validate: v}
	})
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by json field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required", "required_without":
			errs[field] = "This field is required"
		case "userid":
			errs[field] = "Invalid user id"
		case "printable":
			errs[field] = "Contains invalid characters"
		case "gt", "gte":
			errs[field] = fmt.Sprintf("Must be greater than %s", greaterBound(e))
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "url":
			errs[field] = "Invalid URL"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func greaterBound(e validator.FieldError) string {
	if e.Tag() == "gte" {
		return "or equal to " + e.Param()
	}
	return e.Param()
}

func validateUserIDTag(fl validator.FieldLevel) bool {
	return user.ValidateUserID(fl.Field().String()) == nil
}

// validatePrintable rejects control characters. Empty strings pass; combine
// with required when the field is mandatory.
func validatePrintable(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
