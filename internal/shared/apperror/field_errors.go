package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// FieldErrors turns a binding/validation error into a field -> message-list
// map. Field keys are wire names (see Init). Errors that are not
// validator.ValidationErrors yield a single catch-all entry so callers always
// get the same shape for malformed input.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["non_field_errors"] = []string{"Invalid request body."}
		return out
	}

	for _, e := range verrs {
		field := e.Field()
		var msg string
		switch e.Tag() {
		case "required":
			msg = "This field is required."
		case "email":
			msg = formatFieldName(field) + " must be a valid email address."
		case "gte", "min":
			msg = formatFieldName(field) + " must be at least " + e.Param() + "."
		case "lte", "max":
			msg = formatFieldName(field) + " must be at most " + e.Param() + "."
		default:
			msg = formatFieldName(field) + " is invalid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
