package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIDKey is the gin context key holding the request trace ID.
const TraceIDKey = "trace_id"

// RequestIDHeader carries the trace ID in both directions.
const RequestIDHeader = "X-Request-ID"

// TraceMiddleware assigns every request a trace ID. A well-formed incoming
// X-Request-ID is reused, anything else is replaced by a fresh UUID.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.NewString()
		}
		c.Set(TraceIDKey, traceID)
		c.Header(RequestIDHeader, traceID)
		c.Next()
	}
}

// TraceID extracts the trace ID from the Gin context.
func TraceID(c *gin.Context) string {
	if traceID, exists := c.Get(TraceIDKey); exists {
		if id, ok := traceID.(string); ok {
			return id
		}
	}
	return ""
}
