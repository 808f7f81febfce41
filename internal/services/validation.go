package services

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldViolation describes a single failed rule on a payload field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a payload. Evaluation does
// not stop at the first failure; the caller always sees the complete set.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report request field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("namescript", validateNameScript); err != nil {
		panic(err)
	}
	return v
}

// validateNameScript accepts values written entirely in Georgian
// (U+10A0..U+10FF) or entirely in Latin letters, never a mix and nothing but
// letters.
func validateNameScript(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	hasGeorgian, hasLatin := false, false
	for _, r := range value {
		switch {
		case r >= 0x10A0 && r <= 0x10FF:
			hasGeorgian = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLatin = true
		default:
			return false
		}
	}
	return !(hasGeorgian && hasLatin)
}

// validateStruct runs the declarative field rules over a payload and converts
// the result into a *ValidationError listing every violation.
func validateStruct(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validating payload: %w", err)
	}
	violations := make([]FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, FieldViolation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}
	return &ValidationError{Violations: violations}
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "cannot be empty or whitespace"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "startswith":
		return fmt.Sprintf("must start with '%s'", fe.Param())
	case "namescript":
		return "must contain only Georgian or only Latin characters"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed the '%s' rule", fe.Tag())
	}
}
