package testutil

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"wadboard/internal/models"
	"wadboard/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu     sync.Mutex
	Logs   []LogEntry
	closed bool
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

func (m *MockLogger) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Contains reports whether any formatted message contains substr.
func (m *MockLogger) Contains(substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Logs {
		if strings.Contains(e.Message(), substr) {
			return true
		}
	}
	return false
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu           sync.Mutex
	requests     int
	hits         int
	misses       int
	persists     int
	sweeps       int
	records      map[string]int
	probeResults map[string]int
	wolRuns      map[string]int
	sessions     int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.misses++
}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persists++
}

func (m *MockMetrics) SetRecordsTotal(collection string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.records == nil {
		m.records = make(map[string]int)
	}
	m.records[collection] = count
}

func (m *MockMetrics) IncProbeResults(method, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.probeResults == nil {
		m.probeResults = make(map[string]int)
	}
	m.probeResults[method+":"+status]++
}

func (m *MockMetrics) ObserveSweepDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweeps++
}

func (m *MockMetrics) IncWolRuns(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.wolRuns == nil {
		m.wolRuns = make(map[string]int)
	}
	m.wolRuns[result]++
}

func (m *MockMetrics) SetActiveSessions(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = count
}

func (m *MockMetrics) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

func (m *MockMetrics) CacheHits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits
}

func (m *MockMetrics) CacheMisses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.misses
}

func (m *MockMetrics) PersistCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.persists
}

func (m *MockMetrics) Sweeps() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweeps
}

func (m *MockMetrics) Records(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[collection]
}

func (m *MockMetrics) ProbeResults(method, status string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.probeResults[method+":"+status]
}

func (m *MockMetrics) WolRuns(result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wolRuns[result]
}

func (m *MockMetrics) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions
}

var ErrSaveFailed = errors.New("save failed")

// MockPersister implements services.Persister and keeps a copy of every saved document.
type MockPersister struct {
	mu    sync.Mutex
	Fail  bool
	saves []*models.Document
}

func (m *MockPersister) Save(doc *models.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return ErrSaveFailed
	}
	m.saves = append(m.saves, doc.Clone())
	return nil
}

func (m *MockPersister) SetFail(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fail = fail
}

func (m *MockPersister) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saves)
}

// Last returns the most recently saved document, or nil.
func (m *MockPersister) Last() *models.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.saves) == 0 {
		return nil
	}
	return m.saves[len(m.saves)-1]
}

// MapCache implements providers.CacheProviderInterface on a plain map, without expiry.
type MapCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func NewMapCache() *MapCache {
	return &MapCache{data: make(map[string][]byte)}
}

func (c *MapCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *MapCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets++
}

func (c *MapCache) Sets() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets
}
