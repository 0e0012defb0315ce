// Package validation runs the structural stage of the command pipeline:
// field-level constraints checked before any authorization or storage access.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates cmd against its `validate` tags and returns a summary of
// the offending fields, or "" when the command is structurally valid.
func Struct(cmd interface{}) string {
	err := validate.Struct(cmd)
	if err == nil {
		return ""
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldSummary(fe))
	}
	return strings.Join(parts, "; ")
}

func fieldSummary(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' must not be empty", fe.Field())
	case "max":
		return fmt.Sprintf("'%s' must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("'%s' is not a valid email address", fe.Field())
	default:
		return fmt.Sprintf("'%s' failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}
