package telegram

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Encode checks the required fields of r and renders it as its wire
// document. Absent optional fields are omitted, never sent as null.
func Encode(r Request) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil request", ErrUnknownEntity)
	}
	if err := Validate(r); err != nil {
		return nil, err
	}
	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("telegram: encode %s: %w", typeName(reflect.TypeOf(r)), err)
	}
	return body, nil
}
