package middleware

import (
	"log/slog"
	"net/http"

	"rodizio-reservas/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		httperr.Render(c, http.StatusInternalServerError, "Internal server error")
	}
}

// NoRoute keeps unknown paths on the same error body as the handlers
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		httperr.Render(c, http.StatusNotFound, "Route not found")
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)
				httperr.Render(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}
