package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"botschema/internal/inspect"
	"botschema/pkg/telegram"
)

// Encode reads an argument bundle in wire form, checks it and renders the
// canonical document. Every document is checked against the method's wire
// schema when a registry is configured.
func (uc *implUseCase) Encode(ctx context.Context, input inspect.EncodeInput) (inspect.EncodeOutput, error) {
	if len(input.Body) == 0 {
		return inspect.EncodeOutput{}, inspect.ErrEmptyBody
	}

	req, err := uc.decoders[uc.policy].DecodeRequest(input.Method, input.Body)
	if err != nil {
		if errors.Is(err, telegram.ErrUnknownEntity) {
			return inspect.EncodeOutput{}, inspect.ErrMethodNotFound
		}
		return inspect.EncodeOutput{}, err
	}

	reqs := []telegram.Request{req}
	if input.Split {
		msg, ok := req.(telegram.SendMessageArgs)
		if !ok {
			return inspect.EncodeOutput{}, inspect.ErrSplitUnsupported
		}
		reqs = reqs[:0]
		for _, chunk := range telegram.SplitMessage(msg) {
			reqs = append(reqs, chunk)
		}
	}

	out := inspect.EncodeOutput{Method: input.Method}
	for _, r := range reqs {
		body, err := telegram.Encode(r)
		if err != nil {
			return inspect.EncodeOutput{}, err
		}
		if uc.schemas != nil {
			if err := uc.schemas.ValidateDocument(input.Method, body); err != nil {
				uc.l.Warnf(ctx, "inspect.usecase.Encode %s: schema check: %v", input.Method, err)
				return inspect.EncodeOutput{}, err
			}
		}
		out.Documents = append(out.Documents, json.RawMessage(body))
	}
	return out, nil
}
