package inspect

import (
	"encoding/json"

	"botschema/pkg/telegram"
)

// --- UseCase Inputs ---

type DecodeInput struct {
	Entity string
	// Policy overrides the configured enum policy when set.
	Policy *telegram.EnumPolicy
	Body   []byte
}

type EncodeInput struct {
	Method string
	Body   []byte
	// Split breaks an over-long sendMessage into several documents.
	Split bool
}

// --- UseCase Outputs ---

type DecodeOutput struct {
	Entity string
	Policy telegram.EnumPolicy
	// Value is a pointer to the decoded entity.
	Value any
	// Kind is the update kind or message content kind, when Value has one.
	Kind     string
	Commands []string
}

type EncodeOutput struct {
	Method    string
	Documents []json.RawMessage
}

type EnumsOutput struct {
	Tables []telegram.EnumTable
}

type EntityOutput struct {
	Name   string
	Fields []string
}
