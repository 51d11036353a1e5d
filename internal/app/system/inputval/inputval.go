// Package inputval adapts ozzo-validation results for form handlers.
package inputval

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"
)

// FieldErrors flattens a validation.Errors (possibly wrapped) into a
// field -> message map for templates. Nil means no field errors; any
// other error is reported under the "" key.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for field, fe := range verrs {
		if fe != nil {
			out[field] = sentence(fe.Error())
		}
	}
	return out
}

// OneOf builds an In rule over string values.
func OneOf(values []string) validation.Rule {
	return validation.In(lo.ToAnySlice(values)...).Error("must be one of the listed options")
}

// Clean trims surrounding whitespace from a form value.
func Clean(s string) string {
	return strings.TrimSpace(s)
}

func sentence(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}
