package inspect

import "context"

// UseCase decodes and encodes Telegram wire documents on behalf of the
// inspection API.
type UseCase interface {
	Decode(ctx context.Context, input DecodeInput) (DecodeOutput, error)
	Encode(ctx context.Context, input EncodeInput) (EncodeOutput, error)
	Enums(ctx context.Context) EnumsOutput
	Entity(ctx context.Context, name string) (EntityOutput, error)
}
