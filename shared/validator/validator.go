package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"reservo/shared/constant"
	"reservo/shared/failure"
	"reservo/shared/timezone"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

func registerTodayOrLaterValidation(field val.FieldLevel) bool {
	date, err := time.Parse(constant.DateFormat, field.Field().String())
	if err != nil {
		return false
	}

	return !date.Before(timezone.Today())
}

func registerClockValidation(field val.FieldLevel) bool {
	return clockPattern.MatchString(field.Field().String())
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	err := validate.RegisterValidation("today_or_later", registerTodayOrLaterValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("hhmm", registerClockValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. Malformed JSON is a bad request; a value of the
// wrong JSON type and any violated rule are unprocessable, reported per field.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		msg := fmt.Sprintf("%s must be of type %s", field, typeErr.Type.String())

		return failure.UnprocessableField(field, msg) //nolint:wrapcheck
	}

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var overrides map[string]string
	if m, ok := any(data).(Messager); ok {
		overrides = m.ValidationMessages()
	}

	msg, fields := fieldMessages(err, overrides)

	return failure.Unprocessable(msg, fields) //nolint:wrapcheck
}
