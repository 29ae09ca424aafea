package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func findFamily(t *testing.T, families []*dto.MetricFamily, name string) *dto.MetricFamily {
	t.Helper()
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	t.Fatalf("metric family %q not found", name)
	return nil
}

func TestHTTPMetricsObserve(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewHTTPMetrics(registry)

	m.Observe("GET", "/api/inventory", 200, 25*time.Millisecond)
	m.Observe("GET", "/api/inventory", 200, 10*time.Millisecond)
	m.Observe("POST", "/api/inventory", 201, 40*time.Millisecond)

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	requests := findFamily(t, families, "http_requests_total")
	var gets float64
	for _, metric := range requests.GetMetric() {
		labels := map[string]string{}
		for _, pair := range metric.GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
		if labels["method"] == "GET" && labels["route"] == "/api/inventory" && labels["status"] == "200" {
			gets = metric.GetCounter().GetValue()
		}
	}
	if gets != 2 {
		t.Fatalf("expected 2 GET requests counted, got %v", gets)
	}

	duration := findFamily(t, families, "http_request_duration_seconds")
	var samples uint64
	for _, metric := range duration.GetMetric() {
		samples += metric.GetHistogram().GetSampleCount()
	}
	if samples != 3 {
		t.Fatalf("expected 3 duration samples, got %d", samples)
	}
}

func TestHTTPMetricsNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.Observe("GET", "/", 200, time.Millisecond)

	unregistered := NewHTTPMetrics(nil)
	unregistered.Observe("GET", "/", 200, time.Millisecond)
}
