package usecase

import (
	"botschema/api/jsonschema"
	"botschema/pkg/log"
	"botschema/pkg/telegram"
)

// implUseCase is the private implementation of inspect.UseCase.
type implUseCase struct {
	l        log.Logger
	policy   telegram.EnumPolicy
	decoders map[telegram.EnumPolicy]*telegram.Decoder
	schemas  *jsonschema.Registry
}

// New creates a new inspect UseCase. policy is the default enum policy;
// schemas may be nil to skip the wire schema check on encode.
func New(l log.Logger, policy telegram.EnumPolicy, schemas *jsonschema.Registry) *implUseCase {
	return &implUseCase{
		l:      l,
		policy: policy,
		decoders: map[telegram.EnumPolicy]*telegram.Decoder{
			telegram.PolicyLenient: telegram.NewDecoder(telegram.WithEnumPolicy(telegram.PolicyLenient)),
			telegram.PolicyStrict:  telegram.NewDecoder(telegram.WithEnumPolicy(telegram.PolicyStrict)),
		},
		schemas: schemas,
	}
}

func (uc *implUseCase) decoder(override *telegram.EnumPolicy) *telegram.Decoder {
	if override != nil {
		if d, ok := uc.decoders[*override]; ok {
			return d
		}
	}
	return uc.decoders[uc.policy]
}
