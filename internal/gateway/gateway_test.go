package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	"blood-donation-api/internal/api"
	"blood-donation-api/internal/middleware"
)

// fakeService answers a handful of RPCs and records incoming metadata.
type fakeService struct {
	api.UnimplementedBloodBankServiceServer

	mu sync.Mutex
	md metadata.MD
}

func (f *fakeService) record(ctx context.Context) {
	md, _ := metadata.FromIncomingContext(ctx)
	f.mu.Lock()
	f.md = md
	f.mu.Unlock()
}

func (f *fakeService) ListFacilities(ctx context.Context, _ *api.Empty) (*api.ListFacilitiesResponse, error) {
	f.record(ctx)
	return &api.ListFacilitiesResponse{Facilities: []string{"Sahyadri Blood Bank, Pune"}, Slots: []string{"09:00"}}, nil
}

func (f *fakeService) Register(ctx context.Context, req *api.RegisterRequest) (*api.AuthResponse, error) {
	f.record(ctx)
	st := status.New(codes.InvalidArgument, "validation failed")
	st, _ = st.WithDetails(&errdetails.BadRequest{FieldViolations: []*errdetails.BadRequest_FieldViolation{
		{Field: "email", Description: "is required"},
	}})
	return nil, st.Err()
}

func (f *fakeService) ListAppointments(ctx context.Context, _ *api.Empty) (*api.ListAppointmentsResponse, error) {
	return nil, status.Error(codes.Unauthenticated, "no token")
}

func (f *fakeService) CheckEligibility(ctx context.Context, req *api.CheckEligibilityRequest) (*api.CheckEligibilityResponse, error) {
	return &api.CheckEligibilityResponse{Eligible: req.Answers["age"] == "yes"}, nil
}

type harness struct {
	srv  *httptest.Server
	fake *fakeService
}

func setup(t *testing.T, opts Options) *harness {
	t.Helper()
	fake := &fakeService{}
	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	api.RegisterBloodBankServiceServer(gs, fake)
	go gs.Serve(lis)
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	opts.Log = zaptest.NewLogger(t)
	srv := httptest.NewServer(New(conn, opts).Handler())
	t.Cleanup(srv.Close)
	return &harness{srv: srv, fake: fake}
}

func (h *harness) post(t *testing.T, method, contentType string, body []byte, hdr map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, h.srv.URL+api.FullMethod(method), bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", contentType)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestJSONSuccess(t *testing.T) {
	h := setup(t, Options{})

	resp := h.post(t, "ListFacilities", "application/json", nil, map[string]string{"Authorization": "Bearer abc"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got api.ListFacilitiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]string{"Sahyadri Blood Bank, Pune"}, got.Facilities); diff != "" {
		t.Errorf("facilities (-want +got):\n%s", diff)
	}

	h.fake.mu.Lock()
	md := h.fake.md
	h.fake.mu.Unlock()
	if v := md.Get("authorization"); len(v) != 1 || v[0] != "Bearer abc" {
		t.Errorf("authorization not forwarded: %v", v)
	}
	if v := md.Get(middleware.RealIPKey); len(v) != 1 || v[0] != "127.0.0.1" {
		t.Errorf("%s = %v", middleware.RealIPKey, v)
	}
}

func TestJSONRequestBody(t *testing.T) {
	h := setup(t, Options{})

	resp := h.post(t, "CheckEligibility", "application/json", []byte(`{"answers":{"age":"yes"}}`), nil)
	var got api.CheckEligibilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Eligible {
		t.Error("request body was not forwarded")
	}

	resp = h.post(t, "CheckEligibility", "application/json", []byte(`{"answers":`), nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", resp.StatusCode)
	}
}

func TestJSONErrors(t *testing.T) {
	h := setup(t, Options{})

	tests := []struct {
		name       string
		method     string
		wantStatus int
		wantCode   string
		wantFields []fieldJSON
	}{
		{"validation", "Register", http.StatusBadRequest, "InvalidArgument", []fieldJSON{{Field: "email", Description: "is required"}}},
		{"unauthenticated", "ListAppointments", http.StatusUnauthorized, "Unauthenticated", nil},
		{"unimplemented", "HostCamp", http.StatusNotFound, "Unimplemented", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := h.post(t, tt.method, "application/json", []byte(`{}`), nil)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var got errorJSON
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Code != tt.wantCode || got.Error == "" {
				t.Errorf("unexpected body %+v", got)
			}
			if diff := cmp.Diff(tt.wantFields, got.Fields); diff != "" {
				t.Errorf("fields (-want +got):\n%s", diff)
			}
		})
	}
}

// readFrames splits a grpc-web response body into frames.
func readFrames(t *testing.T, r io.Reader) (data []byte, trailer map[string]string) {
	t.Helper()
	body, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	trailer = map[string]string{}
	for len(body) > 0 {
		if len(body) < 5 {
			t.Fatalf("short frame: %x", body)
		}
		n := binary.BigEndian.Uint32(body[1:5])
		payload := body[5 : 5+n]
		if body[0]&trailerFrame != 0 {
			for _, line := range strings.Split(strings.TrimSpace(string(payload)), "\r\n") {
				k, v, _ := strings.Cut(line, ":")
				trailer[k] = v
			}
		} else {
			data = payload
		}
		body = body[5+n:]
	}
	return data, trailer
}

func TestGRPCWebSuccess(t *testing.T) {
	h := setup(t, Options{})

	resp := h.post(t, "CheckEligibility", "application/grpc-web+json",
		frame(dataFrame, []byte(`{"answers":{"age":"yes"}}`)), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/grpc-web+json" {
		t.Errorf("content-type = %q", ct)
	}
	data, tr := readFrames(t, resp.Body)
	if tr["grpc-status"] != "0" {
		t.Errorf("trailer = %v", tr)
	}
	var got api.CheckEligibilityResponse
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Eligible {
		t.Error("expected eligible")
	}
}

func TestGRPCWebError(t *testing.T) {
	h := setup(t, Options{})

	resp := h.post(t, "Register", "application/grpc-web+json", frame(dataFrame, []byte(`{}`)), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data, tr := readFrames(t, resp.Body)
	if len(data) != 0 {
		t.Errorf("unexpected data frame %q", data)
	}
	if tr["grpc-status"] != "3" {
		t.Fatalf("trailer = %v", tr)
	}
	if tr["grpc-message"] != "validation%20failed" {
		t.Errorf("grpc-message = %q", tr["grpc-message"])
	}

	bin, err := base64.RawStdEncoding.DecodeString(tr["grpc-status-details-bin"])
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	var sp spb.Status
	if err := proto.Unmarshal(bin, &sp); err != nil {
		t.Fatalf("unmarshal details: %v", err)
	}
	st := status.FromProto(&sp)
	if len(st.Details()) != 1 {
		t.Fatalf("details = %v", st.Details())
	}
	if br, ok := st.Details()[0].(*errdetails.BadRequest); !ok || br.GetFieldViolations()[0].GetField() != "email" {
		t.Errorf("unexpected detail %v", st.Details()[0])
	}
}

func TestGRPCWebBadFrame(t *testing.T) {
	h := setup(t, Options{})

	resp := h.post(t, "CheckEligibility", "application/grpc-web+json", []byte{0, 0, 0}, nil)
	_, tr := readFrames(t, resp.Body)
	if tr["grpc-status"] != "3" {
		t.Errorf("trailer = %v", tr)
	}
}

func TestUnframe(t *testing.T) {
	tests := []struct {
		name    string
		body    []byte
		want    []byte
		wantErr bool
	}{
		{"empty", nil, nil, false},
		{"data", frame(dataFrame, []byte(`{}`)), []byte(`{}`), false},
		{"short", []byte{0, 0}, nil, true},
		{"truncated", frame(dataFrame, []byte(`{}`))[:6], nil, true},
		{"trailer first", frame(trailerFrame, []byte("x")), nil, true},
		{"compressed", frame(0x01, []byte(`{}`)), nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unframe(tt.body)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	h := setup(t, Options{AllowedOrigin: "https://donate.example.org"})

	req, _ := http.NewRequest(http.MethodOptions, h.srv.URL+api.FullMethod("Login"), nil)
	req.Header.Set("Origin", "https://evil.example.com")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("preflight status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "https://donate.example.org" {
		t.Errorf("allow-origin = %q", got)
	}
	if !strings.Contains(resp.Header.Get("Access-Control-Allow-Headers"), "Authorization") {
		t.Error("Authorization header not allowed")
	}
}

func TestCORSReflectsOrigin(t *testing.T) {
	h := setup(t, Options{})

	resp := h.post(t, "ListFacilities", "application/json", nil, map[string]string{"Origin": "http://localhost:5173"})
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allow-origin = %q", got)
	}
}

func TestRejectsWrongMethodAndType(t *testing.T) {
	h := setup(t, Options{})

	resp, err := http.Get(h.srv.URL + api.FullMethod("ListFacilities"))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d", resp.StatusCode)
	}

	for _, ct := range []string{"text/plain", "application/grpc-web+proto"} {
		resp := h.post(t, "ListFacilities", ct, nil, nil)
		if resp.StatusCode != http.StatusUnsupportedMediaType {
			t.Errorf("%s status = %d", ct, resp.StatusCode)
		}
	}
}

func TestHealthz(t *testing.T) {
	tests := []struct {
		name   string
		health func(context.Context) error
		want   int
	}{
		{"no check", nil, http.StatusOK},
		{"healthy", func(context.Context) error { return nil }, http.StatusOK},
		{"db down", func(context.Context) error { return errors.New("connection refused") }, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := setup(t, Options{Health: tt.health})
			resp, err := http.Get(h.srv.URL + "/healthz")
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := setup(t, Options{})

	resp, err := http.Get(h.srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "blooddonation_appointments_scheduled_total") {
		t.Error("domain metrics missing from /metrics")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := map[codes.Code]int{
		codes.OK:                 200,
		codes.InvalidArgument:    400,
		codes.Unauthenticated:    401,
		codes.PermissionDenied:   403,
		codes.NotFound:           404,
		codes.AlreadyExists:      409,
		codes.FailedPrecondition: 412,
		codes.ResourceExhausted:  429,
		codes.Unavailable:        503,
		codes.Internal:           500,
		codes.Unknown:            500,
	}
	for c, want := range tests {
		if got := httpStatus(c); got != want {
			t.Errorf("httpStatus(%v) = %d, want %d", c, got, want)
		}
	}
}
