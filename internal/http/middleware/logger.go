package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// Logger prints one line per request, with request_id, trace_id and operator when known.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		traceID := ""
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			traceID = sc.TraceID().String()
		}

		log.Printf("[HTTP] request_id=%s trace_id=%s method=%s path=%s status=%d latency_ms=%.3f ip=%s operator=%s",
			GetRequestID(c),
			traceID,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(latency.Microseconds())/1000.0,
			c.ClientIP(),
			GetOperator(c),
		)
	}
}
