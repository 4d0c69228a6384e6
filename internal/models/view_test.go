package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	ran := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	doc := NewDocument()
	doc.Services = append(doc.Services, &Service{ID: "svc-1", Name: "nas", Method: MethodPing, LastStatus: StatusUp})
	doc.Links = append(doc.Links, &Link{ID: "link-1", Title: "wiki", URL: "http://wiki", Icon: DefaultLinkIcon})
	doc.Wol = append(doc.Wol, &WolTask{
		ID:         "wol-1",
		Name:       "wake desktop",
		Host:       "192.168.88.1",
		User:       "admin",
		Pass:       "hunter2",
		ScriptID:   "*5",
		Notes:      "office",
		LastRun:    &ran,
		LastResult: ResultOK,
	})
	return doc
}

func TestSanitize_PrivilegedReturnsFullDocument(t *testing.T) {
	doc := sampleDocument()
	view := Sanitize(doc, true)
	assert.Same(t, doc, view)
}

func TestSanitize_UnprivilegedDropsCredentials(t *testing.T) {
	data, err := json.Marshal(Sanitize(sampleDocument(), false))
	require.NoError(t, err)

	var raw struct {
		Services []map[string]any `json:"services"`
		Links    []map[string]any `json:"links"`
		Wol      []map[string]any `json:"wol"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))

	require.Len(t, raw.Wol, 1)
	task := raw.Wol[0]
	for _, key := range []string{"host", "user", "pass", "scriptId"} {
		assert.NotContains(t, task, key)
	}
	assert.Equal(t, "wol-1", task["id"])
	assert.Equal(t, "wake desktop", task["name"])
	assert.Equal(t, "office", task["notes"])
	assert.Equal(t, ResultOK, task["lastResult"])
	assert.Equal(t, "2026-01-02T03:04:05Z", task["lastRun"])

	assert.Len(t, task, 5)
	require.Len(t, raw.Services, 1)
	assert.Equal(t, "nas", raw.Services[0]["name"])
	require.Len(t, raw.Links, 1)
	assert.Equal(t, "http://wiki", raw.Links[0]["url"])
}

func TestSanitize_EmptyWolListIsArray(t *testing.T) {
	data, err := json.Marshal(Sanitize(NewDocument(), false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"services":[],"links":[],"wol":[]}`, string(data))
}

func TestPatches_ApplyOnlyPresentFields(t *testing.T) {
	svc := &Service{Name: "a", OpenURL: "http://a", CheckURL: "http://a/health", Method: MethodPing, Notes: "n"}
	name := "b"
	bogus := "bogus"
	(&ServicePatch{Name: &name, Method: &bogus}).Apply(svc)

	assert.Equal(t, "b", svc.Name)
	assert.Equal(t, MethodHTTP, svc.Method)
	assert.Equal(t, "http://a", svc.OpenURL)
	assert.Equal(t, "n", svc.Notes)

	link := &Link{Title: "t", Icon: "x"}
	empty := ""
	(&LinkPatch{Icon: &empty}).Apply(link)
	assert.Equal(t, DefaultLinkIcon, link.Icon)
	assert.Equal(t, "t", link.Title)

	task := &WolTask{Pass: "old", Host: "h"}
	pass := "new"
	(&WolPatch{Pass: &pass}).Apply(task)
	assert.Equal(t, "new", task.Pass)
	assert.Equal(t, "h", task.Host)
}
