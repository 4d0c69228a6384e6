package providers

import (
	"fmt"
	"time"
)

// local mocks to avoid an import cycle with testutil

type nopLogger struct{}

func (m *nopLogger) Errorf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *nopLogger) Warnf(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *nopLogger) Debugf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *nopLogger) Infof(_ TypeEnum, _ string, _ ...interface{})  {}
func (m *nopLogger) Fatalf(_ TypeEnum, _ string, _ ...interface{}) {}
func (m *nopLogger) Close()                                        {}

type warnLogger struct {
	nopLogger
	warns []string
}

func (m *warnLogger) Warnf(_ TypeEnum, format string, args ...interface{}) {
	m.warns = append(m.warns, fmt.Sprintf(format, args...))
}

type mockMetrics struct {
	requestEndpoint string
	requestStatus   int
	requestCalls    int
	durationCalls   int
	hits            int
	misses          int
}

func (m *mockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.requestEndpoint = endpoint
	m.requestStatus = status
	m.requestCalls++
}
func (m *mockMetrics) ObserveRequestDuration(_ string, _ time.Duration) { m.durationCalls++ }
func (m *mockMetrics) IncCacheHits()                                    { m.hits++ }
func (m *mockMetrics) IncCacheMisses()                                  { m.misses++ }
func (m *mockMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (m *mockMetrics) SetRecordsTotal(_ string, _ int)                  {}
func (m *mockMetrics) IncProbeResults(_, _ string)                      {}
func (m *mockMetrics) ObserveSweepDuration(_ time.Duration)             {}
func (m *mockMetrics) IncWolRuns(_ string)                              {}
func (m *mockMetrics) SetActiveSessions(_ int)                          {}
