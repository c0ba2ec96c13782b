package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"blood-donation-api/internal/api"
	"blood-donation-api/internal/auth"
	"blood-donation-api/internal/monitoring"
)

// skip auth for these
var open = map[string]bool{
	api.FullMethod("Register"):                 true,
	api.FullMethod("Login"):                    true,
	api.FullMethod("Refresh"):                  true,
	api.FullMethod("ListFacilities"):           true,
	api.FullMethod("SearchDonors"):             true,
	api.FullMethod("SearchBanks"):              true,
	api.FullMethod("BankMap"):                  true,
	api.FullMethod("BloodInventory"):           true,
	api.FullMethod("ListEligibilityQuestions"): true,
	api.FullMethod("CheckEligibility"):         true,
}

// a token is used when valid, otherwise the caller is anonymous
var optional = map[string]bool{
	api.FullMethod("SubmitFeedback"): true,
}

// Auth resolves the bearer token into an auth.Session and injects it into
// the context. Every method not listed as open or optional requires one.
func Auth(iss *auth.Issuer) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if open[info.FullMethod] {
			return next(ctx, req)
		}

		raw := bearer(ctx)
		if optional[info.FullMethod] {
			if s, err := iss.Resolve(raw); raw != "" && err == nil {
				ctx = withSession(ctx, s)
			}
			return next(ctx, req)
		}

		if raw == "" {
			return nil, status.Error(codes.Unauthenticated, "no token")
		}
		s, err := iss.Resolve(raw)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "bad token")
		}
		return next(withSession(ctx, s), req)
	}
}

func withSession(ctx context.Context, s auth.Session) context.Context {
	monitoring.SetSpanUser(ctx, s.UserID)
	return auth.WithSession(ctx, s)
}

// token from authorization: Bearer <jwt>
func bearer(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	v := strings.TrimSpace(vals[0])
	if len(v) > 7 && strings.EqualFold(v[:7], "bearer ") {
		return strings.TrimSpace(v[7:])
	}
	return ""
}
