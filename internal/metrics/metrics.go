package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mutex      sync.RWMutex
	events     map[string]map[string]int64
	sinkErrors map[string]int64
	startTime  time.Time
}

type Snapshot struct {
	TotalEvents int64                  `json:"total_events"`
	TotalErrors int64                  `json:"total_errors"`
	Uptime      time.Duration          `json:"uptime"`
	Sinks       map[string]SinkMetrics `json:"sinks"`
}

type SinkMetrics struct {
	Events map[string]int64 `json:"events"`
	Errors int64            `json:"errors"`
}

func (m *Metrics) RecordEvent(sink, level string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.events[sink] == nil {
		m.events[sink] = make(map[string]int64)
	}
	m.events[sink][level]++
}

func (m *Metrics) RecordSinkError(sink string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.sinkErrors[sink]++
}

func (m *Metrics) Snapshot() Snapshot {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	snap := Snapshot{
		Uptime: time.Since(m.startTime),
		Sinks:  make(map[string]SinkMetrics),
	}

	allSinks := make(map[string]bool)
	for sink := range m.events {
		allSinks[sink] = true
	}
	for sink := range m.sinkErrors {
		allSinks[sink] = true
	}

	for sink := range allSinks {
		sm := SinkMetrics{
			Events: make(map[string]int64, len(m.events[sink])),
			Errors: m.sinkErrors[sink],
		}
		for level, count := range m.events[sink] {
			sm.Events[level] = count
			snap.TotalEvents += count
		}
		snap.TotalErrors += sm.Errors
		snap.Sinks[sink] = sm
	}

	return snap
}

func NewMetrics() *Metrics {
	return &Metrics{
		events:     make(map[string]map[string]int64),
		sinkErrors: make(map[string]int64),
		startTime:  time.Now(),
	}
}
