package middleware

import (
	"bytes"
	"io"

	"github.com/yashkabra143/TimeTrakr/internal/models"
	"github.com/yashkabra143/TimeTrakr/internal/repository"

	"github.com/gin-gonic/gin"
)

const maxAuditBody = 2000

// AuditMiddleware records every mutating API call (method, path,
// truncated body, client address) after the handler runs.
func AuditMiddleware(audit repository.Audit) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" {
			c.Next()
			return
		}

		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		body := string(bodyBytes)
		if len(body) > maxAuditBody {
			body = body[:maxAuditBody]
		}

		log := models.AuditLog{
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Body:      body,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = audit.Create(c.Request.Context(), &log)
	}
}
