// Package gateway lets browsers call BloodBankService over HTTP/1.1. Each
// POST /bloodbank.v1.BloodBankService/<Method> is forwarded to the gRPC
// server, either as plain JSON or as gRPC-Web framed JSON.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"blood-donation-api/internal/api"
	"blood-donation-api/internal/middleware"
	"blood-donation-api/internal/monitoring"
)

const maxBody = 1 << 20

type Options struct {
	// AllowedOrigin is echoed in Access-Control-Allow-Origin; "*" reflects
	// the caller's Origin.
	AllowedOrigin string
	// Health backs GET /healthz; nil always reports ok.
	Health func(ctx context.Context) error
	Log    *zap.Logger
}

// Gateway translates browser HTTP calls into gRPC calls on conn.
type Gateway struct {
	conn   grpc.ClientConnInterface
	closer io.Closer
	opts   Options
	log    *zap.Logger
}

func New(conn grpc.ClientConnInterface, opts Options) *Gateway {
	if opts.AllowedOrigin == "" {
		opts.AllowedOrigin = "*"
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{conn: conn, opts: opts, log: log.Named("gateway")}
}

// Dial connects to the gRPC server at addr (e.g. "localhost:50051").
func Dial(addr string, opts Options) (*Gateway, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("gateway dial: %w", err)
	}
	g := New(conn, opts)
	g.closer = conn
	return g, nil
}

func (g *Gateway) Close() error {
	if g.closer == nil {
		return nil
	}
	return g.closer.Close()
}

// Handler serves the RPC routes plus /metrics and /healthz.
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/"+api.ServiceName+"/", g.cors(http.HandlerFunc(g.rpc)))
	mux.Handle("GET /metrics", promhttp.HandlerFor(monitoring.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /healthz", g.healthz)
	return mux
}

func (g *Gateway) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := g.opts.AllowedOrigin
		if origin == "*" {
			if o := r.Header.Get("Origin"); o != "" {
				origin = o
			}
		}
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, X-Grpc-Web, X-User-Agent")
		h.Set("Access-Control-Expose-Headers",
			"Grpc-Status, Grpc-Message, Grpc-Status-Details-Bin")
		h.Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Gateway) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if g.opts.Health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := g.opts.Health(ctx); err != nil {
			g.log.Warn("health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "unavailable"})
			return
		}
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (g *Gateway) rpc(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST, OPTIONS")
		writeJSONError(w, status.New(codes.Unimplemented, "method not allowed"), http.StatusMethodNotAllowed)
		return
	}

	ct := r.Header.Get("Content-Type")
	web := strings.HasPrefix(ct, "application/grpc-web")
	if web && !strings.HasPrefix(ct, "application/grpc-web+json") {
		// only the JSON message encoding is spoken here
		writeJSONError(w, status.New(codes.InvalidArgument, "use application/grpc-web+json"), http.StatusUnsupportedMediaType)
		return
	}
	if !web && !strings.HasPrefix(ct, "application/json") {
		writeJSONError(w, status.New(codes.InvalidArgument, "use application/json"), http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		g.reply(w, web, nil, status.Error(codes.InvalidArgument, "request body too large or unreadable"))
		return
	}

	payload := body
	if web {
		if payload, err = unframe(body); err != nil {
			g.reply(w, web, nil, status.Error(codes.InvalidArgument, err.Error()))
			return
		}
	}
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	ctx := metadata.NewOutgoingContext(r.Context(), forwardMD(r))
	resp := &rawMsg{}
	err = g.conn.Invoke(ctx, r.URL.Path, &rawMsg{data: payload}, resp, grpc.ForceCodec(rawCodec{}))
	if err != nil {
		st := status.Convert(err)
		g.log.Debug("rpc failed", zap.String("path", r.URL.Path), zap.String("code", st.Code().String()))
	}
	g.reply(w, web, resp.data, err)
}

// forwardMD copies the bearer token and tags the browser's address so the
// rate limiter can key on it.
func forwardMD(r *http.Request) metadata.MD {
	md := metadata.MD{}
	if vals := r.Header.Values("Authorization"); len(vals) > 0 {
		md.Set("authorization", vals...)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host != "" {
		md.Set(middleware.RealIPKey, host)
	}
	return md
}

func (g *Gateway) reply(w http.ResponseWriter, web bool, data []byte, err error) {
	if web {
		writeWeb(w, data, status.Convert(err))
		return
	}
	if err != nil {
		st := status.Convert(err)
		writeJSONError(w, st, httpStatus(st.Code()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type fieldJSON struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

type errorJSON struct {
	Code   string      `json:"code"`
	Error  string      `json:"error"`
	Fields []fieldJSON `json:"fields,omitempty"`
}

func writeJSONError(w http.ResponseWriter, st *status.Status, httpCode int) {
	out := errorJSON{Code: st.Code().String(), Error: st.Message()}
	for _, d := range st.Details() {
		switch d := d.(type) {
		case *errdetails.BadRequest:
			for _, v := range d.GetFieldViolations() {
				out.Fields = append(out.Fields, fieldJSON{Field: v.GetField(), Description: v.GetDescription()})
			}
		case *errdetails.PreconditionFailure:
			for _, v := range d.GetViolations() {
				out.Fields = append(out.Fields, fieldJSON{Field: v.GetSubject(), Description: v.GetDescription()})
			}
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	_ = json.NewEncoder(w).Encode(out)
}

// httpStatus follows the usual gRPC to HTTP mapping.
func httpStatus(c codes.Code) int {
	switch c {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound, codes.Unimplemented:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.FailedPrecondition:
		return http.StatusPreconditionFailed
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Canceled:
		return 499
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
