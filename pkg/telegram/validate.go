package telegram

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	validatorengine "github.com/go-playground/validator/v10"
)

// EnumPolicy decides what happens to an enumeration token outside the
// documented set.
type EnumPolicy int

const (
	// PolicyLenient keeps the raw token as an unknown value.
	PolicyLenient EnumPolicy = iota
	// PolicyStrict fails the whole decode with UnknownEnumValue.
	PolicyStrict
)

func (p EnumPolicy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "lenient"
}

// ParseEnumPolicy parses "strict" or "lenient". Empty means lenient.
func ParseEnumPolicy(s string) (EnumPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return PolicyLenient, nil
	case "strict":
		return PolicyStrict, nil
	}
	return PolicyLenient, fmt.Errorf("telegram: unknown enum policy %q", s)
}

// One engine per policy. validator.Validate is safe for concurrent use
// and caches struct metadata, so both are built once.
var validators = map[EnumPolicy]*validatorengine.Validate{
	PolicyLenient: newValidator(PolicyLenient),
	PolicyStrict:  newValidator(PolicyStrict),
}

func newValidator(p EnumPolicy) *validatorengine.Validate {
	v := validatorengine.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := v.RegisterValidation("wireenum", func(fl validatorengine.FieldLevel) bool {
		if p == PolicyLenient {
			return true
		}
		e, ok := fl.Field().Interface().(Enum)
		return !ok || e.Known()
	})
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks the required fields of an entity or argument bundle.
// Unknown enumeration tokens are accepted.
func Validate(v any) error {
	return validateWith(PolicyLenient, v, typeName(reflect.TypeOf(v)))
}

func validateWith(p EnumPolicy, v any, root string) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		if err := validators[p].Struct(rv.Interface()); err != nil {
			return translateValidationError(err, root, "")
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i)
			for elem.Kind() == reflect.Ptr {
				if elem.IsNil() {
					break
				}
				elem = elem.Elem()
			}
			if elem.Kind() != reflect.Struct {
				continue
			}
			if err := validators[p].Struct(elem.Interface()); err != nil {
				return translateValidationError(err, root, fmt.Sprintf("[%d]", i))
			}
		}
	}
	return nil
}

func translateValidationError(err error, root, prefix string) error {
	var errs validatorengine.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}

	fe := errs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	if prefix != "" {
		field = prefix + "." + field
	}

	if fe.Tag() == "wireenum" {
		uv := &UnknownEnumValue{Field: field}
		rv := reflect.ValueOf(fe.Value())
		for rv.Kind() == reflect.Ptr && !rv.IsNil() {
			rv = rv.Elem()
		}
		if rv.IsValid() && rv.Kind() == reflect.String {
			uv.Token = rv.String()
			if e, ok := rv.Interface().(Enum); ok {
				uv.Kind = e.EnumKind()
			}
		}
		return uv
	}
	return &SchemaViolation{Entity: root, Field: field}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	switch t.Kind() {
	case reflect.Ptr:
		return typeName(t.Elem())
	case reflect.Slice, reflect.Array:
		return "[]" + typeName(t.Elem())
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
