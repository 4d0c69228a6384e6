package monitor

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"
	"wadboard/internal/models"
)

const maxDrainBytes = 64 << 10

// connection pooling limits for the small number of targets a home dashboard watches
const (
	defaultMaxIdleConns        = 20
	defaultMaxIdleConnsPerHost = 2
	defaultIdleConnTimeout     = 60 * time.Second
)

// ClassifyStatus maps an HTTP status code to UP or DOWN. Auth challenges count
// as UP: the service answered, it just wants credentials.
func ClassifyStatus(code int) string {
	switch {
	case code >= 200 && code < 400:
		return models.StatusUp
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return models.StatusUp
	default:
		return models.StatusDown
	}
}

// HTTPChecker probes a URL with GET. A failed or non-UP first attempt is
// retried exactly once with certificate verification disabled, which lets
// self-signed LAN services report UP.
type HTTPChecker struct {
	strict   *http.Client
	insecure *http.Client
	timeout  time.Duration
}

func newTransport(insecure bool) *http.Transport {
	t := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        defaultMaxIdleConns,
		MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
		IdleConnTimeout:     defaultIdleConnTimeout,
	}
	if insecure {
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}
	return t
}

func noRedirect(_ *http.Request, _ []*http.Request) error {
	return http.ErrUseLastResponse
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		strict:   &http.Client{Transport: newTransport(false), CheckRedirect: noRedirect},
		insecure: &http.Client{Transport: newTransport(true), CheckRedirect: noRedirect},
		timeout:  timeout,
	}
}

func (c *HTTPChecker) Check(ctx context.Context, target string) string {
	code, err := c.fetch(ctx, c.strict, target)
	if err == nil && ClassifyStatus(code) == models.StatusUp {
		return models.StatusUp
	}

	code, err = c.fetch(ctx, c.insecure, target)
	if err != nil {
		return models.StatusDown
	}
	return ClassifyStatus(code)
}

func (c *HTTPChecker) fetch(ctx context.Context, client *http.Client, target string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	return resp.StatusCode, nil
}
