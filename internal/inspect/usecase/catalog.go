package usecase

import (
	"context"
	"strings"

	"botschema/internal/inspect"
	"botschema/pkg/telegram"
)

// Enums returns every enumeration table.
func (uc *implUseCase) Enums(ctx context.Context) inspect.EnumsOutput {
	return inspect.EnumsOutput{Tables: telegram.EnumTables()}
}

// Entity returns the wire keys of an entity or argument bundle.
func (uc *implUseCase) Entity(ctx context.Context, name string) (inspect.EntityOutput, error) {
	fields, ok := telegram.WireNames(name)
	if !ok {
		return inspect.EntityOutput{}, inspect.ErrEntityNotFound
	}

	// WireNames matches case-insensitively; report the canonical name.
	canonical := name
	for _, e := range telegram.Entities() {
		if strings.EqualFold(e, name) {
			canonical = e
			break
		}
	}
	return inspect.EntityOutput{Name: canonical, Fields: fields}, nil
}
