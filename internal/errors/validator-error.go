package app_errors

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

func ParseValidationError(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	var out []FieldError
	for _, fe := range ve {
		msgKey, params := validationMessageKey(fe)

		out = append(out, FieldError{
			Field:      toSnakeCase(fe.Field()),
			Reason:     fe.Tag(),
			MessageKey: msgKey,
			Params:     params,
		})
	}

	return out
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(b.String(), " ", "_")
}

func validationMessageKey(fe validator.FieldError) (string, map[string]any) {
	switch fe.Tag() {
	case "required":
		return "validation.required", nil
	case "email":
		return "validation.email", nil
	case "min":
		return "validation.min", map[string]any{"Min": fe.Param()}
	case "max":
		return "validation.max", map[string]any{"Max": fe.Param()}
	case "taskStatus":
		return "validation.task_status", nil
	case "taskPriority":
		return "validation.task_priority", nil
	case "objectId":
		return "validation.object_id", nil
	default:
		return "validation.invalid", nil
	}
}
