package http

import (
	"encoding/json"
	"fmt"
	"strconv"

	"botschema/internal/inspect"
	"botschema/pkg/telegram"
)

// --- Request DTOs ---

type decodeReq struct {
	Entity string `form:"-"`
	Policy string `form:"policy"`
	Body   []byte `form:"-"`
}

func (r decodeReq) validate() error {
	if r.Entity == "" {
		return inspect.ErrEntityNotFound
	}
	if r.Policy != "" {
		if _, err := telegram.ParseEnumPolicy(r.Policy); err != nil {
			return inspect.ErrInvalidPolicy
		}
	}
	return nil
}

func (r decodeReq) toInput() inspect.DecodeInput {
	input := inspect.DecodeInput{Entity: r.Entity, Body: r.Body}
	if r.Policy != "" {
		p, _ := telegram.ParseEnumPolicy(r.Policy)
		input.Policy = &p
	}
	return input
}

// ---

type encodeReq struct {
	Method string `form:"-"`
	Split  string `form:"split"`
	Body   []byte `form:"-"`
}

func (r encodeReq) validate() error {
	if r.Method == "" {
		return inspect.ErrMethodNotFound
	}
	if r.Split != "" {
		if _, err := strconv.ParseBool(r.Split); err != nil {
			return fmt.Errorf("%w: split=%q", inspect.ErrInvalidQuery, r.Split)
		}
	}
	return nil
}

func (r encodeReq) toInput() inspect.EncodeInput {
	split, _ := strconv.ParseBool(r.Split)
	return inspect.EncodeInput{Method: r.Method, Body: r.Body, Split: split}
}

// --- Response DTOs ---

type decodeResp struct {
	Entity   string   `json:"entity"`
	Policy   string   `json:"policy"`
	Kind     string   `json:"kind,omitempty"`
	Commands []string `json:"commands,omitempty"`
	Value    any      `json:"value"`
}

func (h *handler) newDecodeResp(out inspect.DecodeOutput) decodeResp {
	return decodeResp{
		Entity:   out.Entity,
		Policy:   out.Policy.String(),
		Kind:     out.Kind,
		Commands: out.Commands,
		Value:    out.Value,
	}
}

type encodeResp struct {
	Method    string            `json:"method"`
	Documents []json.RawMessage `json:"documents"`
}

func (h *handler) newEncodeResp(out inspect.EncodeOutput) encodeResp {
	return encodeResp{Method: out.Method, Documents: out.Documents}
}

type enumsResp struct {
	Enums []telegram.EnumTable `json:"enums"`
}

func (h *handler) newEnumsResp(out inspect.EnumsOutput) enumsResp {
	return enumsResp{Enums: out.Tables}
}

type entityResp struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

func (h *handler) newEntityResp(out inspect.EntityOutput) entityResp {
	return entityResp{Name: out.Name, Fields: out.Fields}
}
