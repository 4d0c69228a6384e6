package wol

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"
	"wadboard/internal/models"
	"wadboard/internal/providers"
	"wadboard/internal/services"
	"wadboard/internal/structures"

	json "github.com/goccy/go-json"
)

const maxDrainBytes = 64 << 10

type Result struct {
	OK     bool   `json:"ok"`
	Result string `json:"result"`
}

type ExecutorInterface interface {
	Execute(ctx context.Context, task models.WolTask) Result
	Run(ctx context.Context, id string) (Result, error)
}

// Executor triggers a stored script on a router's REST API. Each run makes
// exactly one request; a failed wake-up is reported, never retried.
type Executor struct {
	client     *http.Client
	timeout    time.Duration
	scheme     string
	scriptPath string
	service    services.DashboardServiceInterface
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	now        func() time.Time
}

func NewExecutor(conf *structures.Config, service services.DashboardServiceInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *Executor {
	return &Executor{
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		timeout:    conf.Wol.Timeout,
		scheme:     conf.Wol.Scheme,
		scriptPath: conf.Wol.ScriptPath,
		service:    service,
		logger:     logger,
		metrics:    metrics,
		now:        time.Now,
	}
}

func (e *Executor) endpoint(host string) string {
	host = strings.TrimRight(host, "/")
	if !strings.Contains(host, "://") {
		host = e.scheme + "://" + host
	}
	return host + e.scriptPath
}

func (e *Executor) Execute(ctx context.Context, task models.WolTask) Result {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	body, err := json.Marshal(map[string]string{".id": task.ScriptID})
	if err != nil {
		return Result{Result: models.ResultError}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint(task.Host), bytes.NewReader(body))
	if err != nil {
		e.logger.Warnf(providers.TypeWol, "Task %s: bad request: %s", task.ID, err)
		return Result{Result: models.ResultError}
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(task.User, task.Pass)

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Warnf(providers.TypeWol, "Task %s: request failed: %s", task.ID, err)
		return Result{Result: models.ResultError}
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode == http.StatusOK {
		return Result{OK: true, Result: models.ResultOK}
	}
	return Result{Result: models.HTTPResult(resp.StatusCode)}
}

// Run executes the stored task and records when it ran and how it went,
// whatever the outcome.
func (e *Executor) Run(ctx context.Context, id string) (Result, error) {
	task, err := e.service.GetWolTask(id)
	if err != nil {
		return Result{}, err
	}

	result := e.Execute(ctx, task)
	e.metrics.IncWolRuns(result.Result)
	e.logger.Infof(providers.TypeWol, "Task %s (%s) finished: %s", task.ID, task.Name, result.Result)

	if err = e.service.SetWolResult(id, e.now().UTC(), result.Result); err != nil {
		e.logger.Warnf(providers.TypeWol, "Task %s removed before its result was stored", id)
	}
	return result, nil
}
