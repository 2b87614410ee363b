package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "workshop/pkg/domain-errors"
	limits "workshop/pkg/platform/validation"
	s "workshop/pkg/string"
)

// InputSizeTag bounds raw input before any field rule runs.
const InputSizeTag = "inputsize"

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterAlias(InputSizeTag, fmt.Sprintf("max=%d", limits.MaxInputLength))
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate validates a struct using the default validator and returns a domain error
func Validate(req any) error {
	if err := defaultValidator.Struct(req); err != nil {
		return dErrors.New(dErrors.CodeValidation, ErrorMessage(err))
	}
	return nil
}

// ValidateArguments validates constructor arguments gathered into a struct.
// The first failing field is reported as an invalid argument named after that field.
func ValidateArguments(args any) error {
	err := defaultValidator.Struct(args)
	if err == nil {
		return nil
	}
	return dErrors.NewInvalidArgument(fieldName(err), ErrorMessage(err))
}

// ValidateArgument validates a single constructor argument against a tag
// expression such as "notblank,max=200", reporting failures under param.
func ValidateArgument(param string, value any, tag string) error {
	err := defaultValidator.Var(value, tag)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return dErrors.Wrap(err, dErrors.CodeInvalidArgument, fmt.Sprintf("%s is invalid", param))
	}
	return dErrors.NewInvalidArgument(param, message(param, validationErrs[0]))
}

// ErrorMessage converts a validator error into a human-readable message
func ErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "invalid arguments"
	}

	return message(fieldName(err), validationErrs[0])
}

func message(field string, fe validator.FieldError) string {
	if fe.Tag() == InputSizeTag {
		return fmt.Sprintf("%s input is too large", field)
	}
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "notblank":
		return fmt.Sprintf("%s cannot be empty or whitespace", field)
	case "datetime":
		return fmt.Sprintf("%s must be a date in yyyy-mm-dd form", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		if field == "" {
			return "invalid arguments"
		}
		return fmt.Sprintf("%s is invalid", field)
	}
}

func fieldName(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return ""
	}
	fe := validationErrs[0]
	name := fe.Field()
	if name == "" {
		name = fe.StructField()
	}
	return s.ToSnakeCase(name)
}
