package usecase

import (
	"context"
	"errors"

	"botschema/internal/inspect"
	"botschema/pkg/telegram"
)

// Decode maps a wire document to the named entity.
func (uc *implUseCase) Decode(ctx context.Context, input inspect.DecodeInput) (inspect.DecodeOutput, error) {
	if len(input.Body) == 0 {
		return inspect.DecodeOutput{}, inspect.ErrEmptyBody
	}

	d := uc.decoder(input.Policy)
	v, err := d.DecodeEntity(input.Entity, input.Body)
	if err != nil {
		if errors.Is(err, telegram.ErrUnknownEntity) {
			return inspect.DecodeOutput{}, inspect.ErrEntityNotFound
		}
		uc.l.Debugf(ctx, "inspect.usecase.Decode %s: %v", input.Entity, err)
		return inspect.DecodeOutput{}, err
	}

	out := inspect.DecodeOutput{
		Entity: telegramName(v),
		Policy: d.Policy(),
		Value:  v,
	}
	switch val := v.(type) {
	case *telegram.Update:
		out.Kind = val.Kind()
	case *telegram.Message:
		out.Kind = val.ContentKind()
		out.Commands = val.Commands()
	}
	return out, nil
}
