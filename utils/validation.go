package utils

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/appdotbuilder/nutri-scan/models"

	"github.com/go-playground/validator/v10"
)

// AsValidationError normalizes binding failures into the schema layer's
// ValidationError so callers always see a named field. Errors that are not
// binding-related pass through untouched.
func AsValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &models.ValidationError{
			Field:  fieldName(fe),
			Reason: reasonFor(fe),
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &models.ValidationError{
			Field:  typeErr.Field,
			Reason: "expected " + typeErr.Type.String(),
		}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &models.ValidationError{Field: "body", Reason: "malformed JSON"}
	}

	return err
}

// fieldName lowercases the Go field name into its snake_case JSON form,
// keeping acronym runs like "ID" together.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	var b strings.Builder
	prevLower := false
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			if prevLower {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
			prevLower = false
		} else {
			prevLower = true
		}
		b.WriteRune(r)
	}
	return b.String()
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		return "exceeds maximum length"
	case "oneof":
		return "unrecognized value"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
