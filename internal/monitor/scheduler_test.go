package monitor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
	"wadboard/internal/models"
	"wadboard/internal/services"
	"wadboard/internal/structures"
	"wadboard/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	doc *models.Document
	err error
}

func (l *stubLoader) Load() (*models.Document, error) {
	return l.doc, l.err
}

type countingProber struct {
	sweeps atomic.Int32
}

func (p *countingProber) Probe(_ context.Context, _ models.Service) ProbeResult {
	return ProbeResult{Status: models.StatusUp, CheckedAt: time.Now()}
}

func (p *countingProber) Sweep(_ context.Context) bool {
	p.sweeps.Add(1)
	return true
}

type countingCleaner struct {
	calls atomic.Int32
}

func (c *countingCleaner) Cleanup() int {
	c.calls.Add(1)
	return 0
}

func schedulerConfig() *structures.Config {
	return &structures.Config{Prober: structures.ProberConfig{Interval: time.Hour}}
}

func TestScheduler_InitRunsFirstSweepImmediately(t *testing.T) {
	persister := &testutil.MockPersister{}
	logger := &testutil.MockLogger{}
	svc := services.NewDashboardService(persister, logger, &testutil.MockMetrics{})
	prober := &countingProber{}

	s := NewScheduler(schedulerConfig(), logger, svc, &stubLoader{}, prober, &countingCleaner{})
	s.Init()

	assert.Eventually(t, func() bool { return prober.sweeps.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	s.Stop()
	assert.Equal(t, int32(1), prober.sweeps.Load())
}

func TestScheduler_StopWithoutInit(t *testing.T) {
	s := NewScheduler(schedulerConfig(), &testutil.MockLogger{}, nil, &stubLoader{}, &countingProber{}, &countingCleaner{})
	assert.NotPanics(t, s.Stop)
}

func TestScheduler_Restore(t *testing.T) {
	persister := &testutil.MockPersister{}
	logger := &testutil.MockLogger{}
	svc := services.NewDashboardService(persister, logger, &testutil.MockMetrics{})

	doc := models.NewDocument()
	doc.Services = append(doc.Services, &models.Service{ID: "svc-1", Name: "nas", Method: models.MethodHTTP, LastStatus: models.StatusUp})
	s := NewScheduler(schedulerConfig(), logger, svc, &stubLoader{doc: doc}, &countingProber{}, &countingCleaner{})

	require.NoError(t, s.Restore())
	assert.Equal(t, 1, svc.Counts()[models.CollectionServices])
	assert.Equal(t, "nas", svc.Snapshot().Services[0].Name)
	assert.Equal(t, 0, persister.Saves())
	assert.True(t, logger.Contains("Restored 1 services"))
}

func TestScheduler_RestoreCorruptFileStartsEmpty(t *testing.T) {
	svc := services.NewDashboardService(&testutil.MockPersister{}, &testutil.MockLogger{}, &testutil.MockMetrics{})
	loadErr := errors.New("decode data.json: invalid character")
	s := NewScheduler(schedulerConfig(), &testutil.MockLogger{}, svc, &stubLoader{err: loadErr}, &countingProber{}, &countingCleaner{})

	err := s.Restore()
	assert.ErrorIs(t, err, loadErr)
	assert.Equal(t, 0, svc.Counts()[models.CollectionServices])
	assert.NotNil(t, svc.Snapshot().Wol)
}

func TestScheduler_Persist(t *testing.T) {
	persister := &testutil.MockPersister{}
	logger := &testutil.MockLogger{}
	svc := services.NewDashboardService(persister, logger, &testutil.MockMetrics{})
	s := NewScheduler(schedulerConfig(), logger, svc, &stubLoader{}, &countingProber{}, &countingCleaner{})

	require.NoError(t, s.Persist())
	assert.Equal(t, 1, persister.Saves())

	persister.SetFail(true)
	assert.Error(t, s.Persist())
	assert.Equal(t, 1, logger.Count("error"))
}

func TestCronLogger(t *testing.T) {
	logger := &testutil.MockLogger{}
	l := cronLogger{logger: logger}

	l.Info("skip")
	l.Error(errors.New("boom"), "panic", "stack", "...")

	assert.Equal(t, 1, logger.Count("debug"))
	assert.Equal(t, 1, logger.Count("error"))
	assert.True(t, logger.Contains("boom"))
}
