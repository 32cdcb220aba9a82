package authgate

import (
	"sync"
	"testing"
)

func TestMetricsDisabled(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})

	m.Inc(MetricLoginSuccess)
	if m.Value(MetricLoginSuccess) != 0 {
		t.Error("disabled metrics should not count")
	}
	if m.Enabled() {
		t.Error("Enabled() should be false")
	}
	if got := m.Snapshot(); len(got.Counters) != 0 {
		t.Errorf("snapshot of disabled metrics = %v", got.Counters)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.Inc(MetricLogout)
	if m.Value(MetricLogout) != 0 {
		t.Error("nil metrics should read zero")
	}
	if m.Enabled() {
		t.Error("nil metrics should report disabled")
	}
}

func TestMetricsConcurrentInc(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				m.Inc(MetricAuthorizeSuccess)
			}
		}()
	}
	wg.Wait()

	if got := m.Value(MetricAuthorizeSuccess); got != workers*perWorker {
		t.Errorf("count = %d, want %d", got, workers*perWorker)
	}
}

func TestMetricsOutOfRangeID(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(metricIDCount + 5)
	if m.Value(metricIDCount+5) != 0 {
		t.Error("out-of-range id should be ignored")
	}
}
