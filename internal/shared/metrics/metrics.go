package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	parseStartedTotal   atomic.Uint64
	parseCompletedTotal atomic.Uint64
	parseFailedTotal    atomic.Uint64
	fieldFailedTotal    atomic.Uint64

	parseDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncParseStarted increments the started counter.
func IncParseStarted() {
	parseStartedTotal.Add(1)
}

// IncParseCompleted increments the completed counter.
func IncParseCompleted() {
	parseCompletedTotal.Add(1)
}

// IncParseFailed increments the failed counter.
func IncParseFailed() {
	parseFailedTotal.Add(1)
}

// IncFieldFailed increments the per-field failure counter.
func IncFieldFailed() {
	fieldFailedTotal.Add(1)
}

// ObserveParseDurationMs records a full-pipeline duration in milliseconds.
func ObserveParseDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	parseDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "parse_started_total", "Total resume parses started", parseStartedTotal.Load())
	writeCounter(&buf, "parse_completed_total", "Total resume parses completed", parseCompletedTotal.Load())
	writeCounter(&buf, "parse_failed_total", "Total resume parses failed", parseFailedTotal.Load())
	writeCounter(&buf, "field_failed_total", "Total field extractions failed", fieldFailedTotal.Load())
	writeHistogram(&buf, "parse_duration_ms", "Resume parse duration in milliseconds", parseDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	// counts are per-bucket; rendering accumulates them into le series.
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
