package utils

import (
	"context"
	"log"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

// FormatEvent renders one log line. Cell values can carry line breaks, so
// the message is flattened to keep one event per line.
func FormatEvent(requestID, traceID, module, action, message string) string {
	req := OrDefault(requestID, "-")
	msg := strings.Join(strings.Fields(message), " ")
	line := "[" + strings.ToUpper(module) + "] action=" + action + " request_id=" + req
	if traceID != "" {
		line += " trace_id=" + traceID
	}
	return line + " msg=" + msg
}

// LogEvent prints a standardized line with module/action/request_id.
// Keep messages summarized; never log credentials.
func LogEvent(requestID, module, action, message string) {
	log.Print(FormatEvent(requestID, "", module, action, message))
}

// LogEventCtx is LogEvent plus the trace id of the span in ctx, when any.
func LogEventCtx(ctx context.Context, requestID, module, action, message string) {
	traceID := ""
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		traceID = sc.TraceID().String()
	}
	log.Print(FormatEvent(requestID, traceID, module, action, message))
}
