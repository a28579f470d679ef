package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HEADER_REQUEST_ID = "X-Request-ID"
const CTX_REQUEST_ID = "request_id"

// RequestID reaproveita o X-Request-ID recebido ou gera um novo, e devolve no response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HEADER_REQUEST_ID))
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(CTX_REQUEST_ID, id)
		c.Header(HEADER_REQUEST_ID, id)
		c.Next()
	}
}
