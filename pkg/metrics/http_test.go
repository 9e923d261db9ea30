package metrics

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestHTTPMetricsExportsCounterAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.Observe(http.MethodGet, "/api/vendors", http.StatusOK, 120*time.Millisecond)
	m.Observe(http.MethodGet, "/api/vendors", http.StatusOK, 80*time.Millisecond)
	m.Observe(http.MethodPost, "", http.StatusBadRequest, 10*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := counterValue(mfs, "http_requests_total", map[string]string{
		"method": "GET", "route": "/api/vendors", "status": "200",
	}); err != nil {
		t.Fatalf("fetch counter: %v", err)
	} else if got != 2 {
		t.Fatalf("expected 2 requests, got %f", got)
	}

	if got, err := counterValue(mfs, "http_requests_total", map[string]string{
		"method": "POST", "route": "unmatched", "status": "400",
	}); err != nil {
		t.Fatalf("fetch counter: %v", err)
	} else if got != 1 {
		t.Fatalf("expected empty route to be normalized, got %f", got)
	}

	if got, err := histogramSum(mfs, "http_request_duration_seconds", map[string]string{
		"method": "GET", "route": "/api/vendors",
	}); err != nil {
		t.Fatalf("fetch histogram: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *HTTPMetrics
	m.Observe(http.MethodGet, "/x", http.StatusOK, time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.Observe(http.MethodGet, "/x", http.StatusOK, time.Millisecond)
}

func counterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	metric, err := findMetric(mfs, name, labels)
	if err != nil {
		return 0, err
	}
	return metric.GetCounter().GetValue(), nil
}

func histogramSum(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	metric, err := findMetric(mfs, name, labels)
	if err != nil {
		return 0, err
	}
	return metric.GetHistogram().GetSampleSum(), nil
}

func findMetric(mfs []*dto.MetricFamily, name string, labels map[string]string) (*dto.Metric, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if labelsMatch(metric, labels) {
				return metric, nil
			}
		}
	}
	return nil, fmt.Errorf("metric %q with labels %v not found", name, labels)
}

func labelsMatch(metric *dto.Metric, labels map[string]string) bool {
	have := map[string]string{}
	for _, pair := range metric.GetLabel() {
		have[pair.GetName()] = pair.GetValue()
	}
	for k, v := range labels {
		if have[k] != v {
			return false
		}
	}
	return true
}
