package controllers

import (
	"fmt"
	"net/http"
	"time"
	"wadboard/internal/models"
	"wadboard/internal/services"
	"wadboard/internal/session"
)

type HealthController struct {
	service   services.DashboardServiceInterface
	sessions  session.ManagerInterface
	startTime time.Time
}

type healthResponse struct {
	Status         string  `json:"status"`
	Uptime         string  `json:"uptime"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
	Services       int     `json:"services"`
	Links          int     `json:"links"`
	WolTasks       int     `json:"wol_tasks"`
	ActiveSessions int     `json:"active_sessions"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(hc.startTime)
	counts := hc.service.Counts()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:         "ok",
		Uptime:         formatDuration(uptime),
		UptimeSeconds:  uptime.Seconds(),
		Services:       counts[models.CollectionServices],
		Links:          counts[models.CollectionLinks],
		WolTasks:       counts[models.CollectionWol],
		ActiveSessions: hc.sessions.Count(),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(service services.DashboardServiceInterface, sessions session.ManagerInterface) *HealthController {
	return &HealthController{
		service:   service,
		sessions:  sessions,
		startTime: time.Now(),
	}
}
