package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/QuestBot_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("playerclass", validatePlayerClass)
	_ = v.RegisterValidation("equipslot", validateEquipmentSlot)
	_ = v.RegisterValidation("username", validateUsername)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a field→message map
// without leaking struct names
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
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "playerclass":
			errs[field] = "Invalid class"
		case "equipslot":
			errs[field] = "Invalid slot"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min", "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "username":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validatePlayerClass(fl validator.FieldLevel) bool {
	_, err := domain.ParsePlayerClass(fl.Field().String())
	return err == nil
}

func validateEquipmentSlot(fl validator.FieldLevel) bool {
	_, err := domain.ParseEquipmentSlot(fl.Field().String())
	return err == nil
}

// validateUsername rejects blank names and control characters
func validateUsername(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if strings.TrimSpace(name) == "" {
		return false
	}
	return strings.IndexFunc(name, unicode.IsControl) < 0
}
