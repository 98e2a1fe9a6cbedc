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
	assessmentSubmittedTotal atomic.Uint64
	linkingAttemptedTotal    atomic.Uint64
	linkingCompletedTotal    atomic.Uint64
	linkingFailedTotal       atomic.Uint64
	trackingDroppedTotal     atomic.Uint64
	recommendationsTotal     atomic.Uint64

	submitDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000})
)

// IncAssessmentSubmitted increments the submission counter.
func IncAssessmentSubmitted() {
	assessmentSubmittedTotal.Add(1)
}

// IncLinkingAttempted increments the per-record linking attempt counter.
func IncLinkingAttempted() {
	linkingAttemptedTotal.Add(1)
}

// IncLinkingCompleted increments the per-record linking success counter.
func IncLinkingCompleted() {
	linkingCompletedTotal.Add(1)
}

// IncLinkingFailed increments the per-record linking failure counter.
func IncLinkingFailed() {
	linkingFailedTotal.Add(1)
}

// IncTrackingDropped counts tracking records lost to store failures.
func IncTrackingDropped() {
	trackingDroppedTotal.Add(1)
}

// IncRecommendationsServed counts served recommendation lists.
func IncRecommendationsServed() {
	recommendationsTotal.Add(1)
}

// ObserveSubmitDurationMs records a submission duration in milliseconds.
func ObserveSubmitDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	submitDuration.Observe(value)
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
	writeCounter(&buf, "assessment_submitted_total", "Total assessments submitted", assessmentSubmittedTotal.Load())
	writeCounter(&buf, "linking_attempted_total", "Total anonymous-record link attempts", linkingAttemptedTotal.Load())
	writeCounter(&buf, "linking_completed_total", "Total anonymous records linked", linkingCompletedTotal.Load())
	writeCounter(&buf, "recommendations_served_total", "Total recommendation lists served", recommendationsTotal.Load())
	writeCounter(&buf, "linking_failed_total", "Total anonymous-record link failures", linkingFailedTotal.Load())
	writeCounter(&buf, "tracking_dropped_total", "Total tracking records dropped on store failure", trackingDroppedTotal.Load())
	writeHistogram(&buf, "assessment_submit_duration_ms", "Assessment submission duration in milliseconds", submitDuration.Snapshot())
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
