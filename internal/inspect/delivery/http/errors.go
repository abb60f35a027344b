package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"botschema/api/jsonschema"
	"botschema/internal/inspect"
	"botschema/pkg/response"
	"botschema/pkg/telegram"
)

// writeError translates use-case errors into responses.
func (h *handler) writeError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()

	var serr *jsonschema.Error
	switch {
	case errors.Is(err, inspect.ErrEntityNotFound), errors.Is(err, inspect.ErrMethodNotFound):
		response.NotFound(c, err)
	case errors.Is(err, inspect.ErrInvalidPolicy),
		errors.Is(err, inspect.ErrSplitUnsupported),
		errors.Is(err, inspect.ErrEmptyBody),
		errors.Is(err, inspect.ErrInvalidQuery),
		errors.Is(err, telegram.ErrMalformedDocument):
		response.Error(c, err, nil)
	case errors.As(err, &serr):
		response.Unprocessable(c, serr.Error(), serr.Issues)
	case errors.Is(err, telegram.ErrSchema):
		response.SchemaError(c, err)
	default:
		h.l.Errorf(ctx, "%s: %v", op, err)
		response.InternalError(c, err)
	}
}
