package middleware

import (
	"estatehub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs every error a handler attached to the context. The
// handler has already written the response by the time this runs; nothing
// gets swallowed, nothing gets rewritten.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		if l != nil {
			for _, e := range c.Errors {
				l.Errorf("%s %s: %s", c.Request.Method, c.Request.URL.Path, e.Err)
			}
		}
	}
}
