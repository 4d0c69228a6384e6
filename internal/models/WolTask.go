package models

import (
	"strconv"
	"time"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

type WolTask struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Host       string     `json:"host"`
	User       string     `json:"user"`
	Pass       string     `json:"pass"`
	ScriptID   string     `json:"scriptId"`
	Notes      string     `json:"notes"`
	LastRun    *time.Time `json:"lastRun"`
	LastResult string     `json:"lastResult"`
}

// HTTPResult renders a non-200 remote answer as a result string, e.g. "http_401".
func HTTPResult(code int) string {
	return "http_" + strconv.Itoa(code)
}

func (w *WolTask) Clone() *WolTask {
	c := *w
	if w.LastRun != nil {
		t := *w.LastRun
		c.LastRun = &t
	}
	return &c
}
