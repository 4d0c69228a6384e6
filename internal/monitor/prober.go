package monitor

import (
	"context"
	"time"
	"wadboard/internal/models"
	"wadboard/internal/providers"
	"wadboard/internal/services"
	"wadboard/internal/structures"

	"go.uber.org/atomic"
)

type Checker interface {
	Check(ctx context.Context, target string) string
}

type ProbeResult struct {
	Status    string
	CheckedAt time.Time
}

type ProberInterface interface {
	Probe(ctx context.Context, svc models.Service) ProbeResult
	Sweep(ctx context.Context) bool
}

// Prober checks every service one after another. Sweeps never overlap: a
// Sweep call made while another is running returns false without probing.
type Prober struct {
	service services.DashboardServiceInterface
	http    Checker
	ping    Checker
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	running *atomic.Bool
	now     func() time.Time
}

func NewProber(conf *structures.Config, service services.DashboardServiceInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *Prober {
	return newProber(
		service,
		NewHTTPChecker(conf.Prober.HTTPTimeout),
		NewPingChecker(conf.Prober.PingBinary, conf.Prober.PingTimeout),
		logger,
		metrics,
	)
}

func newProber(service services.DashboardServiceInterface, httpChecker, pingChecker Checker, logger providers.Logger, metrics providers.MetricsProviderInterface) *Prober {
	return &Prober{
		service: service,
		http:    httpChecker,
		ping:    pingChecker,
		logger:  logger,
		metrics: metrics,
		running: atomic.NewBool(false),
		now:     time.Now,
	}
}

// Probe never fails: any error or panic while checking turns into DOWN.
func (p *Prober) Probe(ctx context.Context, svc models.Service) (result ProbeResult) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Errorf(providers.TypeProbe, "Probe of %s panicked: %v", svc.ID, r)
			result = ProbeResult{Status: models.StatusDown, CheckedAt: p.now()}
		}
	}()

	checker := p.http
	if svc.Method == models.MethodPing {
		checker = p.ping
	}
	status := checker.Check(ctx, svc.CheckURL)
	if status != models.StatusUp {
		status = models.StatusDown
	}

	return ProbeResult{Status: status, CheckedAt: p.now()}
}

func (p *Prober) Sweep(ctx context.Context) bool {
	if !p.running.CompareAndSwap(false, true) {
		p.logger.Debugf(providers.TypeProbe, "Sweep already in progress, skipping")
		return false
	}
	defer p.running.Store(false)

	start := time.Now()
	targets := p.service.Services()
	applied := 0
	for _, svc := range targets {
		if ctx.Err() != nil {
			p.logger.Infof(providers.TypeProbe, "Sweep interrupted after %d of %d services", applied, len(targets))
			break
		}
		result := p.Probe(ctx, svc)
		p.metrics.IncProbeResults(svc.Method, result.Status)
		if p.service.ApplyProbe(svc, result.Status, result.CheckedAt) {
			applied++
		}
	}

	if err := p.service.Persist(); err != nil {
		p.logger.Errorf(providers.TypeStore, "Error while persisting data: %s", err)
	}

	elapsed := time.Since(start)
	p.metrics.ObserveSweepDuration(elapsed)
	p.logger.Debugf(providers.TypeProbe, "Sweep finished: %d services in %s", applied, elapsed)
	return true
}
