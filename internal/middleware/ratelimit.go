package middleware

import (
	"context"
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"blood-donation-api/internal/api"
	"blood-donation-api/internal/monitoring"
)

// RealIPKey carries the browser's address from the gateway.
const RealIPKey = "x-real-ip"

type client struct {
	lim  *rate.Limiter
	seen time.Time
}

type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	r       rate.Limit
	burst   int
}

// NewRateLimiter starts a janitor that drops idle clients until ctx is done.
func NewRateLimiter(ctx context.Context, rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		r:       rate.Limit(rps),
		burst:   burst,
	}
	go rl.janitor(ctx, time.Minute, 3*time.Minute)
	return rl
}

func (rl *RateLimiter) janitor(ctx context.Context, every, idle time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			rl.sweep(time.Now().Add(-idle))
		}
	}
}

func (rl *RateLimiter) sweep(cutoff time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, c := range rl.clients {
		if c.seen.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *RateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if c, ok := rl.clients[ip]; ok {
		c.seen = time.Now()
		return c.lim
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	rl.clients[ip] = &client{lim: l, seen: time.Now()}
	return l
}

// Allow reports whether ip may make another call now.
func (rl *RateLimiter) Allow(ip string) bool { return rl.get(ip).Allow() }

// methods that should be rate limited
var limited = map[string]bool{
	api.FullMethod("Register"):            true,
	api.FullMethod("Login"):               true,
	api.FullMethod("Refresh"):             true,
	api.FullMethod("ScheduleAppointment"): true,
	api.FullMethod("SubmitBloodRequest"):  true,
	api.FullMethod("SubmitFeedback"):      true,
	api.FullMethod("HostCamp"):            true,
}

func RateLimit(rl *RateLimiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if !limited[info.FullMethod] {
			return next(ctx, req)
		}
		if !rl.Allow(clientIP(ctx)) {
			monitoring.RateLimited()
			return nil, status.Error(codes.ResourceExhausted, "too many requests")
		}
		return next(ctx, req)
	}
}

// clientIP is the peer's host. x-real-ip is honoured only from a loopback
// peer, i.e. the in-process gateway.
func clientIP(ctx context.Context) string {
	ip := "unknown"
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		ip = p.Addr.String()
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
	}
	if parsed := net.ParseIP(ip); parsed != nil && parsed.IsLoopback() {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(RealIPKey); len(vals) > 0 && vals[0] != "" {
				return vals[0]
			}
		}
	}
	return ip
}
