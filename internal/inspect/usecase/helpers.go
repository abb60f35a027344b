package usecase

import "reflect"

// telegramName is the type name behind the pointer DecodeEntity returns.
func telegramName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
