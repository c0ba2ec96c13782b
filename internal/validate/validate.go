// Package validate runs struct-tag validation on incoming forms and reports
// failures per field, keyed by the field's JSON name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"blood-donation-api/internal/model"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"description"`
}

// Errors is returned for any validation failure. It is never empty.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, f := range e {
		parts[i] = f.Field + " " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field failed.
func (e Errors) Has(field string) bool {
	for _, f := range e {
		if f.Field == field {
			return true
		}
	}
	return false
}

func Field(field, msg string) Errors {
	return Errors{{Field: field, Message: msg}}
}

var clock = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("bloodtype", func(fl validator.FieldLevel) bool {
			return model.BloodType(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			return clock.MatchString(fl.Field().String())
		})
	})
	return v
}

// Struct validates s and converts validator failures into Errors.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

// Merge joins field errors from several checks; nil when there are none.
func Merge(errs ...error) error {
	var out Errors
	for _, err := range errs {
		if err == nil {
			continue
		}
		var fe Errors
		if !errors.As(err, &fe) {
			return err
		}
		out = append(out, fe...)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "email":
		return "must be a valid email address"
	case "bloodtype":
		return "must be a valid blood type"
	case "clock":
		return "must be a time of day (HH:MM)"
	}
	return "is invalid"
}
