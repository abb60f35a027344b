package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"botschema/pkg/telegram"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends error response with status code and message.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
		Data:      data,
	})
}

// SchemaError sends 422 with one ErrorDetail per mapping error found in err.
func SchemaError(c *gin.Context, err error) {
	Unprocessable(c, err.Error(), Details(err))
}

// Unprocessable sends 422 with the given error list.
func Unprocessable(c *gin.Context, message string, errs any) {
	c.JSON(http.StatusUnprocessableEntity, Resp{
		ErrorCode: SchemaErrorCode,
		Message:   message,
		Errors:    errs,
	})
}

// Details flattens err into ErrorDetails. Joined and wrapped errors are
// walked; anything that is not a mapping error becomes a "malformed" entry.
func Details(err error) []ErrorDetail {
	if err == nil {
		return nil
	}
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		var out []ErrorDetail
		for _, e := range multi.Unwrap() {
			out = append(out, Details(e)...)
		}
		if len(out) > 0 {
			return out
		}
	}

	var (
		tm *telegram.TypeMismatch
		sv *telegram.SchemaViolation
		uv *telegram.UnknownEnumValue
	)
	switch {
	case errors.As(err, &tm):
		return []ErrorDetail{{
			Kind: "type_mismatch", Entity: tm.Entity, Field: tm.Field,
			Expected: tm.Expected, Actual: tm.Actual, Message: tm.Error(),
		}}
	case errors.As(err, &sv):
		return []ErrorDetail{{Kind: "schema_violation", Entity: sv.Entity, Field: sv.Field, Message: sv.Error()}}
	case errors.As(err, &uv):
		return []ErrorDetail{{Kind: "unknown_enum_value", Entity: uv.Kind, Field: uv.Field, Token: uv.Token, Message: uv.Error()}}
	}
	return []ErrorDetail{{Kind: "malformed", Message: err.Error()}}
}

// NotFound sends 404 response.
func NotFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: NotFoundErrorCode,
		Message:   err.Error(),
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsCode,
		Message:   "Too many requests",
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
