package models

import "time"

// PublicWolTask is the projection of a WolTask shown to visitors without a session.
type PublicWolTask struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Notes      string     `json:"notes"`
	LastRun    *time.Time `json:"lastRun"`
	LastResult string     `json:"lastResult"`
}

type PublicDocument struct {
	Services []*Service      `json:"services"`
	Links    []*Link         `json:"links"`
	Wol      []PublicWolTask `json:"wol"`
}

// Sanitize returns the view of doc a reader is allowed to see. Router
// credentials and targets never leave the process for unprivileged readers.
func Sanitize(doc *Document, privileged bool) any {
	if privileged {
		return doc
	}
	tasks := make([]PublicWolTask, 0, len(doc.Wol))
	for _, w := range doc.Wol {
		tasks = append(tasks, PublicWolTask{
			ID:         w.ID,
			Name:       w.Name,
			Notes:      w.Notes,
			LastRun:    w.LastRun,
			LastResult: w.LastResult,
		})
	}
	return &PublicDocument{
		Services: doc.Services,
		Links:    doc.Links,
		Wol:      tasks,
	}
}
