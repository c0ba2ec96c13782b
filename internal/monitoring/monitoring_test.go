package monitoring

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestMetricNamingConvention(t *testing.T) {
	for _, c := range Collectors() {
		ch := make(chan *prometheus.Desc, 10)
		c.Describe(ch)
		close(ch)

		for desc := range ch {
			s := desc.String()
			if !strings.Contains(s, `fqName: "blooddonation_`) {
				t.Errorf("metric %s does not start with blooddonation_ prefix", s)
			}
			if strings.Contains(s, `help: ""`) {
				t.Errorf("metric %s has empty help string", s)
			}
		}
	}
}

func TestRegistryGathers(t *testing.T) {
	RecordRPC("/bloodbank.v1.BloodBankService/Login", "OK", 5*time.Millisecond)

	families, err := Registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "blooddonation_rpc_requests_total" {
			found = true
		}
	}
	if !found {
		t.Error("rpc counter missing from registry")
	}
}

func counterValue(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()
	m, ok := c.(prometheus.Metric)
	if !ok {
		t.Fatalf("%T is not a single metric", c)
	}
	var pb dto.Metric
	if err := m.Write(&pb); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	return pb.GetCounter().GetValue()
}

func TestRecorders(t *testing.T) {
	t.Cleanup(func() {
		bloodRequestsTotal.Reset()
		eligibilityChecksTotal.Reset()
	})

	before := counterValue(t, appointmentsScheduledTotal)
	AppointmentScheduled()
	if got := counterValue(t, appointmentsScheduledTotal); got != before+1 {
		t.Errorf("scheduled = %v, want %v", got, before+1)
	}

	BloodRequestSubmitted("critical")
	BloodRequestSubmitted("critical")
	if got := counterValue(t, bloodRequestsTotal.WithLabelValues("critical")); got != 2 {
		t.Errorf("critical requests = %v, want 2", got)
	}

	EligibilityChecked(true)
	EligibilityChecked(false)
	EligibilityChecked(false)
	if got := counterValue(t, eligibilityChecksTotal.WithLabelValues("not_eligible")); got != 2 {
		t.Errorf("not eligible = %v, want 2", got)
	}
}

func useTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := Tracer
	Tracer = tp.Tracer(tracerName)
	t.Cleanup(func() {
		Tracer = prev
		_ = tp.Shutdown(context.Background())
	})
	return exporter
}

func TestStartRPCSpan(t *testing.T) {
	exporter := useTestTracer(t)

	ctx, span := StartRPCSpan(context.Background(), "/bloodbank.v1.BloodBankService/ListAppointments")
	SetSpanUser(ctx, "u1")
	_, child := StartChildSpan(ctx, "store.ListAppointments")
	child.End()
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	parent := spans[1]
	if parent.SpanKind != trace.SpanKindServer {
		t.Errorf("span kind = %v", parent.SpanKind)
	}
	if spans[0].Parent.SpanID() != parent.SpanContext.SpanID() {
		t.Error("child span not parented to rpc span")
	}
	found := false
	for _, attr := range parent.Attributes {
		if string(attr.Key) == "enduser.id" && attr.Value.AsString() == "u1" {
			found = true
		}
	}
	if !found {
		t.Error("enduser.id attribute missing")
	}
}

func TestRecordSpanError(t *testing.T) {
	exporter := useTestTracer(t)

	_, span := StartChildSpan(context.Background(), "op")
	RecordSpanError(span, nil)
	RecordSpanError(span, errors.New("boom"))
	span.End()

	s := exporter.GetSpans()[0]
	if s.Status.Code != codes.Error || s.Status.Description != "boom" {
		t.Errorf("unexpected status %+v", s.Status)
	}
	if len(s.Events) != 1 {
		t.Errorf("expected one error event, got %d", len(s.Events))
	}
}
