package shared

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// GatewayMetrics tracks upstream call outcomes and cache effectiveness for
// the whole process. All counters are monotonic.
type GatewayMetrics struct {
	mutex            sync.Mutex
	upstreamCalls    int64
	upstreamFailures int64
	cacheHits        int64
	cacheMisses      int64
}

// NewGatewayMetrics creates a new metrics tracker
func NewGatewayMetrics() *GatewayMetrics {
	return &GatewayMetrics{}
}

// RecordUpstreamCall records one upstream HTTP call and its outcome
func (m *GatewayMetrics) RecordUpstreamCall(success bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.upstreamCalls++
	if !success {
		m.upstreamFailures++
	}
}

// RecordCacheHit records a cache read that returned a live entry
func (m *GatewayMetrics) RecordCacheHit() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.cacheHits++
}

// RecordCacheMiss records a cache read that found nothing usable
func (m *GatewayMetrics) RecordCacheMiss() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.cacheMisses++
}

// Snapshot returns the current counter values
func (m *GatewayMetrics) Snapshot() map[string]int64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return map[string]int64{
		"upstream_calls":    m.upstreamCalls,
		"upstream_failures": m.upstreamFailures,
		"cache_hits":        m.cacheHits,
		"cache_misses":      m.cacheMisses,
	}
}

// LogSummary logs the current counters at Info level
func (m *GatewayMetrics) LogSummary() {
	snapshot := m.Snapshot()

	logrus.WithFields(logrus.Fields{
		"upstream_calls":    snapshot["upstream_calls"],
		"upstream_failures": snapshot["upstream_failures"],
		"cache_hits":        snapshot["cache_hits"],
		"cache_misses":      snapshot["cache_misses"],
	}).Info("Gateway metrics summary")
}
