package metrics

import (
	"sort"
	"sync"
	"time"
)

const (
	methodTrackerInterval = 5 * time.Minute
	methodTrackerWindow   = 1000
)

// MethodTracker keeps recent durations per JSON-RPC method and periodically
// publishes their p99.
type MethodTracker struct {
	mu      sync.RWMutex
	methods map[string]*MethodStats
	ticker  *time.Ticker
	done    chan struct{}
}

// MethodStats holds statistics for a method
type MethodStats struct {
	Method    string
	Durations []float64
	Count     int64
	LastSeen  time.Time
}

var (
	globalTracker   *MethodTracker
	globalTrackerMu sync.Mutex
)

// StartMethodTracking initializes and starts the method tracker
func StartMethodTracking() {
	globalTrackerMu.Lock()
	defer globalTrackerMu.Unlock()

	if globalTracker != nil {
		return
	}

	globalTracker = newMethodTracker()
	globalTracker.ticker = time.NewTicker(methodTrackerInterval)
	go globalTracker.run()
}

// StopMethodTracking stops the method tracker
func StopMethodTracking() {
	globalTrackerMu.Lock()
	defer globalTrackerMu.Unlock()

	if globalTracker != nil {
		close(globalTracker.done)
		globalTracker.ticker.Stop()
		globalTracker = nil
	}
}

func newMethodTracker() *MethodTracker {
	return &MethodTracker{
		methods: make(map[string]*MethodStats),
		done:    make(chan struct{}),
	}
}

// TrackMethod records a method duration. It is a no-op until tracking starts.
func TrackMethod(method string, duration float64) {
	globalTrackerMu.Lock()
	tracker := globalTracker
	globalTrackerMu.Unlock()

	if tracker == nil {
		return
	}
	tracker.record(method, duration, time.Now())
}

func (mt *MethodTracker) record(method string, duration float64, now time.Time) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	stats, exists := mt.methods[method]
	if !exists {
		stats = &MethodStats{
			Method:    method,
			Durations: make([]float64, 0, methodTrackerWindow),
		}
		mt.methods[method] = stats
	}

	stats.Durations = append(stats.Durations, duration)
	stats.Count++
	stats.LastSeen = now

	if len(stats.Durations) > methodTrackerWindow {
		stats.Durations = stats.Durations[len(stats.Durations)-methodTrackerWindow:]
	}
}

func (mt *MethodTracker) run() {
	for {
		select {
		case <-mt.ticker.C:
			mt.publish(time.Now())
		case <-mt.done:
			return
		}
	}
}

// p99s returns the p99 of every method seen since cutoff.
func (mt *MethodTracker) p99s(cutoff time.Time) map[string]float64 {
	mt.mu.RLock()
	defer mt.mu.RUnlock()

	out := make(map[string]float64, len(mt.methods))
	for method, stats := range mt.methods {
		if stats.LastSeen.Before(cutoff) || len(stats.Durations) == 0 {
			continue
		}

		durations := make([]float64, len(stats.Durations))
		copy(durations, stats.Durations)
		sort.Float64s(durations)

		idx := int(float64(len(durations)) * 0.99)
		if idx >= len(durations) {
			idx = len(durations) - 1
		}
		out[method] = durations[idx]
	}
	return out
}

func (mt *MethodTracker) publish(now time.Time) {
	gauge := GetMetrics().RPC.TopMethodsLatency
	gauge.Reset()
	for method, p99 := range mt.p99s(now.Add(-2 * methodTrackerInterval)) {
		gauge.WithLabelValues(method).Set(p99)
	}
}
