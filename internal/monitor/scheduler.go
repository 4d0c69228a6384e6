package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"
	"wadboard/internal/models"
	"wadboard/internal/monitor/interfaces"
	"wadboard/internal/providers"
	"wadboard/internal/services"
	"wadboard/internal/structures"

	"github.com/robfig/cron/v3"
)

const sessionCleanupInterval = time.Minute

type Loader interface {
	Load() (*models.Document, error)
}

type SessionCleaner interface {
	Cleanup() int
}

type Scheduler struct {
	config   *structures.Config
	logger   providers.Logger
	service  services.DashboardServiceInterface
	store    Loader
	prober   ProberInterface
	sessions SessionCleaner
	cron     *cron.Cron
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// cronLogger routes robfig/cron's own messages through the application logger.
type cronLogger struct {
	logger providers.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugf(providers.TypeProbe, "cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorf(providers.TypeProbe, "cron: %s: %s %v", msg, err, keysAndValues)
}

func (s *Scheduler) Init() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	logger := cronLogger{logger: s.logger}
	s.cron = cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	s.cron.Schedule(cron.Every(s.config.Prober.Interval), cron.FuncJob(s.sweep))
	s.cron.Schedule(cron.Every(sessionCleanupInterval), cron.FuncJob(func() {
		if removed := s.sessions.Cleanup(); removed > 0 {
			s.logger.Debugf(providers.TypeAuth, "Removed %d expired sessions", removed)
		}
	}))

	// first sweep right away instead of one interval after start
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.sweep()
	}()

	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Scheduler started, probing every %s", s.config.Prober.Interval)
}

func (s *Scheduler) sweep() {
	if !s.prober.Sweep(s.ctx) {
		s.logger.Debugf(providers.TypeProbe, "Previous sweep still running")
	}
}

// Stop cancels in-flight probes and waits for running jobs to return.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	s.wg.Wait()
}

// Restore loads the data file into the dashboard. On failure the dashboard
// keeps an empty document and the error is returned for the caller to report.
func (s *Scheduler) Restore() error {
	doc, err := s.store.Load()
	if err != nil {
		s.service.Load(models.NewDocument())
		return fmt.Errorf("restore dashboard: %w", err)
	}
	s.service.Load(doc)

	counts := s.service.Counts()
	s.logger.Infof(providers.TypeStore, "Restored %d services, %d links, %d wol tasks",
		counts[models.CollectionServices], counts[models.CollectionLinks], counts[models.CollectionWol])
	return nil
}

func (s *Scheduler) Persist() error {
	s.logger.Infof(providers.TypeStore, "Persisting dashboard to file...")
	if err := s.service.Persist(); err != nil {
		s.logger.Errorf(providers.TypeStore, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.DashboardServiceInterface, store Loader, prober ProberInterface, sessions SessionCleaner) interfaces.SchedulerInterface {
	return &Scheduler{
		config:   config,
		logger:   logger,
		service:  service,
		store:    store,
		prober:   prober,
		sessions: sessions,
	}
}
