package weather

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate holds the field rules declared in struct tags. A Validate instance
// caches struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("precipitation_type", isPrecipitationType); err != nil {
		panic(fmt.Sprintf("register precipitation_type rule: %v", err))
	}
	return v
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func isPrecipitationType(fl validator.FieldLevel) bool {
	return PrecipitationType(fl.Field().String()).Valid()
}

// ValidateItem checks a single record: required fields, the precipitation
// variant and, for current precipitation, the severity and type lists.
func ValidateItem[C ~int](item Item[C]) error {
	return asError(checkItem("", int(item.Code), item))
}

func checkItem[C ~int](table string, code int, item Item[C]) []*ValidationError {
	var problems []*ValidationError
	add := func(field, msg string) {
		problems = append(problems, &ValidationError{Table: table, Code: code, Field: field, Message: msg})
	}

	problems = append(problems, fieldErrors(table, code, "", validate.Struct(item))...)

	if item.Precipitation == nil {
		add("precipitation", "missing precipitation state")
		return problems
	}

	if current, ok := currentOf(item.Precipitation); ok {
		problems = append(problems, fieldErrors(table, code, "precipitation.", validate.Struct(current))...)
		primary := current.PrimaryPrecipitationType
		if primary != "" && !slices.Contains(current.PossiblePrecipitationTypes, primary) {
			add("precipitation.primaryPrecipitationType",
				fmt.Sprintf("primary type %q is not one of the possible types %v", primary, current.PossiblePrecipitationTypes))
		}
		return problems
	}

	switch item.Precipitation.(type) {
	case NoPrecipitation, PrecipitationInPrecedingHour:
	default:
		add("precipitation", fmt.Sprintf("unsupported precipitation variant %T", item.Precipitation))
	}
	return problems
}

// fieldErrors converts the result of a validator run into ValidationErrors.
func fieldErrors(table string, code int, prefix string, err error) []*ValidationError {
	if err == nil {
		return nil
	}

	var fes validator.ValidationErrors
	if !errors.As(err, &fes) {
		return []*ValidationError{{Table: table, Code: code, Field: strings.TrimSuffix(prefix, "."), Message: err.Error()}}
	}

	out := make([]*ValidationError, 0, len(fes))
	for _, fe := range fes {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out = append(out, &ValidationError{
			Table:   table,
			Code:    code,
			Field:   prefix + fe.Field(),
			Message: fmt.Sprintf("value %v fails rule '%s'", fe.Value(), rule),
		})
	}
	return out
}

func asError(problems []*ValidationError) error {
	if len(problems) == 0 {
		return nil
	}
	errs := make([]error, len(problems))
	for i, p := range problems {
		errs[i] = p
	}
	return errors.Join(errs...)
}
