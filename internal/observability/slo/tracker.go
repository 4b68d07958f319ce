package slo

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"slices"
	"sync"
	"time"
)

// DefaultMaxSamples bounds the latency samples kept per window.
const DefaultMaxSamples = 10000

// Snapshot is the outcome of one window.
type Snapshot struct {
	Requests     int
	ServerErrors int
	Availability float64
	ErrorRate    float64
	P95          time.Duration
	P99          time.Duration
}

// Tracker accumulates request outcomes until Flush. Once the window holds
// maxSamples latencies the oldest are overwritten.
type Tracker struct {
	mu         sync.Mutex
	requests   int
	errors     int
	latencies  []time.Duration
	next       int
	maxSamples int
}

// NewTracker returns a tracker keeping at most maxSamples latencies per window.
func NewTracker(maxSamples int) *Tracker {
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}
	return &Tracker{maxSamples: maxSamples}
}

// Observe records one finished request.
func (t *Tracker) Observe(status int, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests++
	if status >= http.StatusInternalServerError {
		t.errors++
	}
	if len(t.latencies) < t.maxSamples {
		t.latencies = append(t.latencies, d)
		return
	}
	t.latencies[t.next] = d
	t.next = (t.next + 1) % t.maxSamples
}

// Flush closes the current window, publishes its gauges and starts a new one.
// An empty window counts as fully available.
func (t *Tracker) Flush() Snapshot {
	t.mu.Lock()
	snap := Snapshot{Requests: t.requests, ServerErrors: t.errors, Availability: 1}
	samples := t.latencies
	t.requests, t.errors, t.latencies, t.next = 0, 0, nil, 0
	t.mu.Unlock()

	if snap.Requests > 0 {
		snap.ErrorRate = float64(snap.ServerErrors) / float64(snap.Requests)
		snap.Availability = 1 - snap.ErrorRate
	}
	slices.Sort(samples)
	snap.P95 = percentile(samples, 0.95)
	snap.P99 = percentile(samples, 0.99)

	SLOAvailability.Set(snap.Availability)
	SLOErrorRate.Set(snap.ErrorRate)
	SLOLatencyP95.Set(snap.P95.Seconds())
	SLOLatencyP99.Set(snap.P99.Seconds())
	return snap
}

// Run flushes every interval until ctx is cancelled.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := t.Flush()
			if snap.Availability*100 < AvailabilitySLO {
				slog.Warn("availability below objective",
					slog.Float64("availability", snap.Availability),
					slog.Int("requests", snap.Requests),
					slog.Int("server_errors", snap.ServerErrors))
			}
		}
	}
}

// percentile uses the nearest-rank method on sorted samples.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(p*float64(len(sorted)))) - 1
	rank = max(0, min(rank, len(sorted)-1))
	return sorted[rank]
}
