package monitoring

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "blood-donation-api"

// Tracer is a noop until a TracerProvider is registered.
var Tracer = otel.Tracer(tracerName)

// StartRPCSpan starts the server span for one RPC.
// Callers must call span.End() when the operation completes.
func StartRPCSpan(ctx context.Context, method string) (context.Context, trace.Span) {
	return Tracer.Start(ctx, method,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("rpc.system", "grpc"),
			attribute.String("rpc.method", method),
		),
	)
}

// SetSpanUser tags the current span with the signed-in user.
func SetSpanUser(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("enduser.id", userID))
}

// StartChildSpan starts a child span under the current trace context, e.g.
// around a store call.
func StartChildSpan(ctx context.Context, spanName string) (context.Context, trace.Span) {
	return Tracer.Start(ctx, spanName)
}

// RecordSpanError records err on span and marks it failed. No-op for nil.
func RecordSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
