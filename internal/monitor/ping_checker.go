package monitor

import (
	"context"
	"net/url"
	"os/exec"
	"strconv"
	"strings"
	"time"
	"wadboard/internal/models"
)

// grace on top of ping's own -W deadline before the process is killed
const pingGrace = time.Second

// PingChecker sends one ICMP echo request through the system ping binary,
// which already holds the privileges raw sockets need.
type PingChecker struct {
	binary  string
	timeout time.Duration
}

func NewPingChecker(binary string, timeout time.Duration) *PingChecker {
	return &PingChecker{binary: binary, timeout: timeout}
}

// PingHost extracts the hostname from a URL-shaped check target. Anything
// that is not a URL with a host is pinged as given.
func PingHost(target string) string {
	u, err := url.Parse(target)
	if err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return target
}

// Check reports DOWN without running ping when the host is empty or would be
// parsed as an option.
func (p *PingChecker) Check(ctx context.Context, target string) string {
	host := PingHost(target)
	if host == "" || strings.HasPrefix(host, "-") {
		return models.StatusDown
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout+pingGrace)
	defer cancel()

	seconds := max(int(p.timeout/time.Second), 1)
	cmd := exec.CommandContext(ctx, p.binary, "-c", "1", "-W", strconv.Itoa(seconds), host)
	if err := cmd.Run(); err != nil {
		return models.StatusDown
	}
	return models.StatusUp
}
