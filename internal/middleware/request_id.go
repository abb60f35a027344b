package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"botschema/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an id, taken from the incoming
// X-Request-ID header when it is a valid UUID. The id is echoed in the
// response and carried by the request context into log lines.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
