package telegram

import (
	"encoding/json"
)

// Response is the envelope every API method answers with.
type Response struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	Description *string         `json:"description,omitempty"`
	ErrorCode   *int            `json:"error_code,omitempty"`
}

// DecodeResponse unwraps the envelope and decodes its result as a T.
// An envelope with ok=false yields *APIError.
func DecodeResponse[T any](d *Decoder, data []byte) (T, error) {
	var zero T
	env, err := Decode[Response](d, data)
	if err != nil {
		return zero, err
	}
	if !env.OK {
		return zero, &APIError{Code: Value(env.ErrorCode), Description: Value(env.Description)}
	}
	return Decode[T](d, env.Result)
}
