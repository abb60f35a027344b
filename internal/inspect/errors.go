package inspect

import "errors"

var (
	ErrEntityNotFound   = errors.New("entity not found")
	ErrMethodNotFound   = errors.New("method not found")
	ErrInvalidPolicy    = errors.New("invalid enum policy")
	ErrSplitUnsupported = errors.New("split is only supported for sendMessage")
	ErrEmptyBody        = errors.New("request body is empty")
	ErrInvalidQuery     = errors.New("invalid query parameter")
)
