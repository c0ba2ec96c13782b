package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"blood-donation-api/internal/monitoring"
)

// Observe wraps each RPC in a server span, records its status code and
// latency, and logs it. It is the outermost interceptor so rejected calls
// are counted too.
func Observe(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		ctx, span := monitoring.StartRPCSpan(ctx, info.FullMethod)
		defer span.End()

		resp, err := next(ctx, req)

		code := status.Code(err)
		elapsed := time.Since(start)
		monitoring.RecordRPC(info.FullMethod, code.String(), elapsed)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", elapsed),
		}
		switch code {
		case codes.OK:
			log.Debug("rpc", fields...)
		case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
			monitoring.RecordSpanError(span, err)
			log.Error("rpc", append(fields, zap.Error(err))...)
		default:
			log.Info("rpc", append(fields, zap.String("error", status.Convert(err).Message()))...)
		}
		return resp, err
	}
}
