package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"wadboard/internal/services"
	"wadboard/internal/session"
	"wadboard/internal/structures"
	"wadboard/internal/testutil"
	"wadboard/internal/wol"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	t         *testing.T
	conf      *structures.Config
	service   services.DashboardServiceInterface
	persister *testutil.MockPersister
	sessions  *session.Manager
	auth      *AuthController
	api       *ApiController
	cache     *testutil.MapCache
	router    chi.Router
}

func testConfig() *structures.Config {
	return &structures.Config{
		Auth: structures.AuthConfig{
			Password:   "wadboard",
			SessionTTL: time.Hour,
			CookieName: "wadboard_session",
		},
		Wol: structures.WolConfig{
			Timeout:    time.Second,
			Scheme:     "http",
			ScriptPath: "/rest/system/script/run",
		},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	conf := testConfig()
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}
	persister := &testutil.MockPersister{}

	svc := services.NewDashboardService(persister, logger, metrics)
	sessions := session.NewManager(conf, metrics)
	cookies, err := session.NewCookieCodec(conf, logger)
	require.NoError(t, err)

	auth := NewAuthController(logger, sessions, cookies)
	cache := testutil.NewMapCache()
	api := NewApiController(logger, svc, cache, auth, wol.NewExecutor(conf, svc, logger, metrics))

	r := chi.NewRouter()
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)
	r.Post("/api/login", auth.Login)
	r.Post("/api/logout", auth.Logout)
	r.Get("/api/session", auth.Session)
	r.Get("/api/state", api.GetState)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession)
		r.Post("/api/service", api.CreateService)
		r.Put("/api/service/{id}", api.UpdateService)
		r.Delete("/api/service/{id}", api.DeleteService)
		r.Post("/api/link", api.CreateLink)
		r.Put("/api/link/{id}", api.UpdateLink)
		r.Delete("/api/link/{id}", api.DeleteLink)
		r.Post("/api/wol", api.CreateWolTask)
		r.Put("/api/wol/{id}", api.UpdateWolTask)
		r.Delete("/api/wol/{id}", api.DeleteWolTask)
		r.Post("/api/wol/{id}/run", api.RunWol)
		r.Put("/api/reorder/{collection}", api.Reorder)
	})

	return &testEnv{
		t: t, conf: conf, service: svc, persister: persister, sessions: sessions,
		auth: auth, api: api, cache: cache, router: r,
	}
}

func (e *testEnv) do(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) login() *http.Cookie {
	e.t.Helper()
	rr := e.do(http.MethodPost, "/api/login", `{"password":"wadboard"}`, nil)
	require.Equal(e.t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(e.t, cookies, 1)
	return cookies[0]
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}
