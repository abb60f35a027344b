package telegram

import (
	"encoding/json"
	"reflect"
	"sort"
)

// Enum is implemented by every wire enumeration.
// Known reports whether the value is one of the documented tokens.
type Enum interface {
	Known() bool
	EnumKind() string
}

// enumTable maps wire tokens to symbols and back.
// Aliases are accepted on decode and normalized to their symbol.
type enumTable[T ~string] struct {
	kind    string
	byToken map[string]T
	tokens  map[T]string
	order   []T
}

func newEnumTable[T ~string](kind string, values ...T) *enumTable[T] {
	t := &enumTable[T]{
		kind:    kind,
		byToken: make(map[string]T, len(values)),
		tokens:  make(map[T]string, len(values)),
	}
	for _, v := range values {
		t.byToken[string(v)] = v
		t.tokens[v] = string(v)
		t.order = append(t.order, v)
	}
	registerEnum(kind, t)
	return t
}

func (t *enumTable[T]) alias(token string, v T) *enumTable[T] {
	t.byToken[token] = v
	return t
}

func (t *enumTable[T]) lookup(token string) (T, bool) {
	v, ok := t.byToken[token]
	return v, ok
}

func (t *enumTable[T]) known(v T) bool {
	_, ok := t.tokens[v]
	return ok
}

// token returns the canonical wire token. Unknown values pass through raw.
func (t *enumTable[T]) token(v T) string {
	if s, ok := t.tokens[v]; ok {
		return s
	}
	return string(v)
}

func (t *enumTable[T]) values() []string {
	out := make([]string, 0, len(t.order))
	for _, v := range t.order {
		out = append(out, t.tokens[v])
	}
	return out
}

func (t *enumTable[T]) aliases() map[string]string {
	out := map[string]string{}
	for token, v := range t.byToken {
		if token != string(v) {
			out[token] = string(v)
		}
	}
	return out
}

// unmarshal decodes a JSON string token into dst. Unknown tokens are kept
// as raw values; strict rejection happens in the validation pass.
func (t *enumTable[T]) unmarshal(data []byte, dst *T) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &json.UnmarshalTypeError{
			Value: jsonValueKind(data),
			Type:  reflect.TypeOf(*dst),
		}
	}
	if v, ok := t.lookup(s); ok {
		*dst = v
		return nil
	}
	*dst = T(s)
	return nil
}

func (t *enumTable[T]) marshal(v T) ([]byte, error) {
	return json.Marshal(t.token(v))
}

type enumDescriber interface {
	values() []string
	aliases() map[string]string
}

var enumRegistry = map[string]enumDescriber{}

func registerEnum(kind string, d enumDescriber) {
	enumRegistry[kind] = d
}

// EnumTable describes one enumeration: its documented tokens in
// declaration order and any legacy aliases accepted on decode.
type EnumTable struct {
	Kind    string            `json:"kind"`
	Tokens  []string          `json:"tokens"`
	Aliases map[string]string `json:"aliases,omitempty"`
}

// EnumTables returns every enumeration table sorted by kind.
func EnumTables() []EnumTable {
	kinds := make([]string, 0, len(enumRegistry))
	for k := range enumRegistry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	out := make([]EnumTable, 0, len(kinds))
	for _, k := range kinds {
		d := enumRegistry[k]
		et := EnumTable{Kind: k, Tokens: d.values()}
		if a := d.aliases(); len(a) > 0 {
			et.Aliases = a
		}
		out = append(out, et)
	}
	return out
}

// jsonValueKind names the JSON type of a raw value the way encoding/json
// reports it in UnmarshalTypeError.
func jsonValueKind(data []byte) string {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return "object"
		case '[':
			return "array"
		case '"':
			return "string"
		case 't', 'f':
			return "bool"
		case 'n':
			return "null"
		default:
			return "number"
		}
	}
	return "empty"
}
