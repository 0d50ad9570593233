package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":       "{field} is required",
		"gte":            "{field} must be greater than or equal to {param}",
		"lte":            "{field} must be less than or equal to {param}",
		"oneof":          "{field} must be one of {param}",
		"max":            "{field} must be less than or equal to {param}",
		"min":            "{field} must be greater than or equal to {param}",
		"email":          "{field} must be a valid email address",
		"datetime":       "{field} must be a valid date in YYYY-MM-DD format",
		"today_or_later": "{field} must be today or a future date",
		"hhmm":           "{field} must be in HH:MM format",
	}
)

// Messager lets a request override the default message of a rule for a field.
// Keys have the form "field.tag", e.g. "guests.max".
type Messager interface {
	ValidationMessages() map[string]string
}

// fieldMessages returns the message of the first violated rule and one message per field.
func fieldMessages(err error, overrides map[string]string) (string, map[string]string) {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error(), nil
	}

	first := ""
	fields := make(map[string]string, len(valErrors))

	for _, valErr := range valErrors {
		field := valErr.Field()
		if _, seen := fields[field]; seen {
			continue
		}

		msg := render(field, valErr.Tag(), valErr.Param(), overrides)
		fields[field] = msg

		if first == "" {
			first = msg
		}
	}

	return first, fields
}

func render(field, tag, param string, overrides map[string]string) string {
	if msg, ok := overrides[field+"."+tag]; ok {
		return msg
	}

	msg, ok := messages[tag]
	if !ok {
		msg = "{field} is invalid"
	}

	msg = strings.ReplaceAll(msg, "{field}", field)

	return strings.ReplaceAll(msg, "{param}", param)
}
