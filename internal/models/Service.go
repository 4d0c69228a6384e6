package models

import "time"

const (
	MethodHTTP = "http"
	MethodPing = "ping"
)

const (
	StatusUnknown = "unknown"
	StatusUp      = "UP"
	StatusDown    = "DOWN"
)

type Service struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	OpenURL     string     `json:"openUrl"`
	CheckURL    string     `json:"checkUrl"`
	Method      string     `json:"method"`
	Notes       string     `json:"notes"`
	LastStatus  string     `json:"lastStatus"`
	LastChecked *time.Time `json:"lastChecked"`
}

// NormalizeMethod coerces anything outside the known probe methods to http.
func NormalizeMethod(method string) string {
	if method == MethodPing {
		return MethodPing
	}
	return MethodHTTP
}

func normalizeStatus(status string) string {
	switch status {
	case StatusUp, StatusDown:
		return status
	default:
		return StatusUnknown
	}
}

func (s *Service) Clone() *Service {
	c := *s
	if s.LastChecked != nil {
		t := *s.LastChecked
		c.LastChecked = &t
	}
	return &c
}
