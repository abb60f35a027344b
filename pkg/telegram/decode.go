package telegram

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Decoder maps wire documents to typed values. It holds no mutable state
// and is safe for concurrent use.
type Decoder struct {
	policy EnumPolicy
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithEnumPolicy sets how unknown enumeration tokens are handled.
func WithEnumPolicy(p EnumPolicy) DecoderOption {
	return func(d *Decoder) {
		if p == PolicyStrict {
			d.policy = PolicyStrict
			return
		}
		d.policy = PolicyLenient
	}
}

// NewDecoder returns a lenient Decoder unless configured otherwise.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{policy: PolicyLenient}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Policy returns the enum policy in effect.
func (d *Decoder) Policy() EnumPolicy {
	return d.policy
}

// Decode parses data into a T. On error the zero T is returned.
//
// Unknown object keys are ignored. Type disagreements produce
// *TypeMismatch, missing identifiers *SchemaViolation and, under
// PolicyStrict, undocumented tokens *UnknownEnumValue.
func Decode[T any](d *Decoder, data []byte) (T, error) {
	var v T
	if err := d.decodeInto(data, &v, typeName(reflect.TypeOf(v))); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// DecodeEntity decodes data as the named entity or argument bundle and
// returns a pointer to the new value.
func (d *Decoder) DecodeEntity(name string, data []byte) (any, error) {
	t, ok := lookupEntity(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, name)
	}
	ptr := reflect.New(t)
	if err := d.decodeInto(data, ptr.Interface(), t.Name()); err != nil {
		return nil, err
	}
	return ptr.Interface(), nil
}

// DecodeRequest decodes the body of the given API method.
func (d *Decoder) DecodeRequest(method string, data []byte) (Request, error) {
	t, ok := requestTypes[method]
	if !ok {
		return nil, fmt.Errorf("%w: method %q", ErrUnknownEntity, method)
	}
	ptr := reflect.New(t)
	if err := d.decodeInto(data, ptr.Interface(), t.Name()); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface().(Request), nil
}

func (d *Decoder) decodeInto(data []byte, ptr any, root string) error {
	if err := json.Unmarshal(data, ptr); err != nil {
		return translateDecodeError(err, root)
	}
	return validateWith(d.policy, ptr, root)
}

func translateDecodeError(err error, root string) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %s: offset %d: %v", ErrMalformedDocument, root, se.Offset, se)
	}

	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return &TypeMismatch{
			Entity:   root,
			Field:    te.Field,
			Expected: wireTypeName(te.Type),
			Actual:   te.Value,
			Offset:   te.Offset,
		}
	}

	return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, root, err)
}

var enumType = reflect.TypeOf((*Enum)(nil)).Elem()

// wireTypeName names a Go type by the JSON type expected on the wire.
func wireTypeName(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Implements(enumType) {
		return "string (" + t.Name() + ")"
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Map, reflect.Interface:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	}
	return t.String()
}
