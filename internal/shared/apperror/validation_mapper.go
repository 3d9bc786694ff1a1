package apperror

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns a json field name into a label:
// employeeNumber -> Employee Number, days_worked -> Days Worked, hra -> HRA.
func formatFieldName(s string) string {
	if len(s) <= 3 && strings.ToLower(s) == s {
		return strings.ToUpper(s)
	}

	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case unicode.IsUpper(r) && i > 0:
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(b.String())
}

// MapValidationError converts the first binding failure into an *AppError.
// Malformed JSON or values that cannot be coerced keep their decoder message.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return Wrap(err, CodeInvalidInput, err.Error(), ErrInvalidInput.HTTPStatus)
}
