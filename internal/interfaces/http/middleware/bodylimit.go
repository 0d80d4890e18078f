package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipartOverhead covers boundaries and form fields around the file parts.
const multipartOverhead = 1 << 20

// MaxBodySize caps the request body at limit plus the multipart overhead.
// Reads past the cap fail, which the upload handlers report as 413.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)
		}
		c.Next()
	}
}
