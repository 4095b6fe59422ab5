package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"interview-prep/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Validator validates request DTOs through their `validate` struct tags and reports
// failures as domain.ValidationErrors keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct returns nil when s is valid.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewInvalidInputError(err.Error())
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, toValidationError(fe))
	}
	return out
}

func toValidationError(fe validator.FieldError) domain.ValidationError {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required", "required_without":
		return domain.NewMissingFieldError(field)
	case "oneof":
		return domain.NewInvalidChoiceError(field, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return domain.ValidationError{
			Field:   field,
			Code:    domain.CodeOutOfRange,
			Message: fmt.Sprintf("%s must be at least %s (got %v)", field, fe.Param(), fe.Value()),
		}
	case "max":
		return domain.ValidationError{
			Field:   field,
			Code:    domain.CodeOutOfRange,
			Message: fmt.Sprintf("%s must be at most %s (got %v)", field, fe.Param(), fe.Value()),
		}
	default:
		return domain.NewInvalidFormatError(field, fe.Value())
	}
}

// fieldPath drops the top-level struct name: "SubmitAnswerRequest.audio.data" -> "audio.data".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
