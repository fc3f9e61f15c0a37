package domain

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// A custom metric entry must carry exactly one value field.
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		e := sl.Current().Interface().(CustomMetricEntryCreate)
		if e.ValueCount() != 1 {
			sl.ReportError(e, "value", "value", "onevalue", "")
		}
	}, CustomMetricEntryCreate{})

	return v
}

// Validate checks a value against its declared constraints: closed
// enumerations, scale bounds, required fields. Slices are validated
// element-wise. Non-struct values pass.
func Validate(v any) error {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return validate.Struct(rv.Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			el := rv.Index(i)
			for el.Kind() == reflect.Pointer && !el.IsNil() {
				el = el.Elem()
			}
			if el.Kind() != reflect.Struct {
				return nil
			}
			if err := validate.Struct(el.Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

// InvalidFields lists the failing field names, if err came from Validate.
func InvalidFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
