package apperror

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns a json field name ("leaveReason") into its
// human-readable form ("Leave Reason").
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")

	var b strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}

	caser := cases.Title(language.English)
	return caser.String(b.String())
}

// MapValidationError turns a gin binding error into an AppError naming the
// first violated field. The field name comes from the json tag registered in
// Init().
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		default:
			return InvalidField(field)
		}
	}

	return ErrInvalidInput
}
