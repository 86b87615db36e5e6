package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"forumapi/src/app/http/response"
)

// Recovery turns a panic in any later handler into a 500 response and logs
// it with the stack. Register it first.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			requestID := GetRequestID(c)
			log.Error("panic recovered",
				"request_id", requestID,
				"error", rec,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"stack", string(debug.Stack()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.InternalErrorBody(requestID))
		}()

		c.Next()
	}
}
