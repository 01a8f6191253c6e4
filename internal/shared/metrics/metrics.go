package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	pipelineRunsTotal     atomic.Uint64
	pipelineNoTextTotal   atomic.Uint64
	chatAnsweredTotal     atomic.Uint64
	genaiFallbackTotal    atomic.Uint64
	genaiRateLimitedTotal atomic.Uint64
	scenarioRejectedTotal atomic.Uint64

	pipelineDuration = newHistogram([]float64{50, 100, 250, 500, 1000, 2000, 5000, 10000, 30000})
)

// IncPipelineRun increments the pipeline run counter.
func IncPipelineRun() {
	pipelineRunsTotal.Add(1)
}

// IncPipelineNoText counts documents that yielded no extractable text.
func IncPipelineNoText() {
	pipelineNoTextTotal.Add(1)
}

// IncChatAnswered increments the answered chat question counter.
func IncChatAnswered() {
	chatAnsweredTotal.Add(1)
}

// IncGenAIFallback counts generative calls recovered into static fallbacks.
func IncGenAIFallback() {
	genaiFallbackTotal.Add(1)
}

// IncGenAIRateLimited counts generative calls rejected by quota limits.
func IncGenAIRateLimited() {
	genaiRateLimitedTotal.Add(1)
}

// IncScenarioRejected counts scenario requests with an unknown tag.
func IncScenarioRejected() {
	scenarioRejectedTotal.Add(1)
}

// ObservePipelineDurationMs records a full pipeline run duration in milliseconds.
func ObservePipelineDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	pipelineDuration.Observe(value)
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
	writeCounter(&buf, "pipeline_runs_total", "Total document pipeline runs", pipelineRunsTotal.Load())
	writeCounter(&buf, "pipeline_no_text_total", "Total documents with no extractable text", pipelineNoTextTotal.Load())
	writeCounter(&buf, "chat_answered_total", "Total chat questions answered", chatAnsweredTotal.Load())
	writeCounter(&buf, "genai_fallback_total", "Total generative calls recovered into fallbacks", genaiFallbackTotal.Load())
	writeCounter(&buf, "genai_rate_limited_total", "Total generative calls rejected by quota", genaiRateLimitedTotal.Load())
	writeCounter(&buf, "scenario_rejected_total", "Total scenario requests with unknown tags", scenarioRejectedTotal.Load())
	writeHistogram(&buf, "pipeline_duration_ms", "Pipeline run duration in milliseconds", pipelineDuration.Snapshot())
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
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
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

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
