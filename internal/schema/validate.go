// Package schema converts untrusted wire DTOs into validated domain entities
// and back. Every Parse runs two passes: structural constraints declared as
// validator tags on the DTO, then semantic conversion (dates, checksums,
// nested entities) in code. The first failing constraint wins; Serialize is
// the lossless inverse and never invents values for absent optionals.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/boddenberg/zapay-go/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	plateRegexp    = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)
	tokenRegexp    = regexp.MustCompile(`^[A-Za-z0-9-_=]+\.[A-Za-z0-9-_=]+\.?[A-Za-z0-9-_.+/=]*$`)
	documentRegexp = regexp.MustCompile(`^([0-9]{11}|[0-9]{14})$`)
	digitsRegexp   = regexp.MustCompile(`^[0-9]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field paths with their json names, not Go identifiers.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic("schema: register " + tag + ": " + err.Error())
		}
	}

	must("renavam", func(fl validator.FieldLevel) bool {
		return ValidRenavam(fl.Field().String())
	})
	must("brplate", func(fl validator.FieldLevel) bool {
		return plateRegexp.MatchString(fl.Field().String())
	})
	must("brdocument", func(fl validator.FieldLevel) bool {
		return documentRegexp.MatchString(fl.Field().String())
	})
	must("digitsonly", func(fl validator.FieldLevel) bool {
		return digitsRegexp.MatchString(fl.Field().String())
	})

	return v
}

// checkStruct runs the structural pass over a DTO and maps the first
// validator failure into a *domain.ValidationError rooted at entity.
func checkStruct(entity string, dto any) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &domain.ValidationError{
			Field:      fieldPath(entity, fe.Namespace()),
			Constraint: fe.Tag(),
			Actual:     fmt.Sprintf("%v", fe.Value()),
		}
	}
	return &domain.ValidationError{Field: entity, Constraint: "struct", Actual: fmt.Sprintf("%v", err)}
}

// fieldPath rewrites a validator namespace ("DebtDTO.dueDate") into an
// entity-rooted dotted path ("debt.dueDate").
func fieldPath(entity, namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return entity + namespace[i:]
	}
	return entity
}

func failScalar(field, constraint, actual string) error {
	return &domain.ValidationError{Field: field, Constraint: constraint, Actual: actual}
}
