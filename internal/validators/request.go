package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ZaidAmirMahdi10/goal-tracker/models"
	"github.com/go-playground/validator/v10"
)

// Tag of the custom rule accepting YYYY-MM-DD dates and RFC 3339 timestamps.
const calendarDateTag = "calendardate"

// dateFields are reported as [ErrInvalidDate] whatever rule they fail.
var dateFields = map[string]struct{}{
	"startDate": {},
	"deadline":  {},
}

// RequestValidator implements [Validator] for the request models of both
// services on top of go-playground/validator. Field names in errors are the
// JSON names clients send.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [RequestValidator] with the calendar date
// rule registered.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation(calendarDateTag, func(fl validator.FieldLevel) bool {
		_, err := models.ParseDate(fl.Field().String())
		return err == nil
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj. When fields are given only those JSON fields are
// validated.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//   - models.GoalInput / *models.GoalInput
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest,
		models.GoalInput, *models.GoalInput:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, structFields(obj, fields)...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return translate(err)
}

// structFields maps JSON field names to the Go field names StructPartial
// expects.
func structFields(obj any, fields []string) []string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	names := make([]string, 0, len(fields))
	for _, field := range fields {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			jsonName, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if jsonName == field || f.Name == field {
				names = append(names, f.Name)
			}
		}
	}

	return names
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	missing := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		if _, ok := dateFields[fieldErr.Field()]; ok {
			return fmt.Errorf("%w: %s", ErrInvalidDate, fieldErr.Field())
		}
		missing = append(missing, fieldErr.Field())
	}

	return fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, ", "))
}
