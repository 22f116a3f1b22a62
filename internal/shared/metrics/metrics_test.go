package metrics

import (
	"strings"
	"testing"
)

func TestRenderContainsAllSeries(t *testing.T) {
	IncParseStarted()
	IncParseCompleted()
	IncFieldFailed()
	ObserveParseDurationMs(123)

	out := Render()
	for _, series := range []string{
		"parse_started_total",
		"parse_completed_total",
		"parse_failed_total",
		"field_failed_total",
		"parse_duration_ms_bucket",
		"parse_duration_ms_sum",
		"parse_duration_ms_count",
	} {
		if !strings.Contains(out, series) {
			t.Errorf("render output missing %s", series)
		}
	}
}

func TestHistogramObserve(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(5000)

	snap := h.Snapshot()
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("counts = %v", snap.counts)
	}
	if snap.count != 3 {
		t.Fatalf("count = %d", snap.count)
	}
	if snap.sum != 5055 {
		t.Fatalf("sum = %v", snap.sum)
	}
}
