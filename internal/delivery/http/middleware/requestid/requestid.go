package http_requestid_middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const Header = "X-Request-Id"

// RequestID tags every request with a UUID so log lines from one request
// can be correlated. An incoming id is kept as-is.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(Header, id)
		c.Next()
	}
}
