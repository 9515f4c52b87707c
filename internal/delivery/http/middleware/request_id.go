package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with a fresh id, exposed both to handlers via
// the context and to clients via the X-Request-ID header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("RequestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
