package controllers

import (
	"net/http"
	"strconv"
	"wadboard/internal/models"
	"wadboard/internal/providers"
	"wadboard/internal/services"
	"wadboard/internal/wol"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

type Authorizer interface {
	IsAdmin(r *http.Request) bool
}

type ApiController struct {
	logger   providers.Logger
	service  services.DashboardServiceInterface
	cache    providers.CacheProviderInterface
	auth     Authorizer
	executor wol.ExecutorInterface
}

func NewApiController(logger providers.Logger, service services.DashboardServiceInterface, cache providers.CacheProviderInterface, auth *AuthController, executor *wol.Executor) *ApiController {
	return &ApiController{
		logger:   logger,
		service:  service,
		cache:    cache,
		auth:     auth,
		executor: executor,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		writeRaw(w, http.StatusOK, data)
		return
	}

	result, err := compute()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ac.cache.Set(cacheKey, gson)
	writeRaw(w, http.StatusOK, gson)
}

func (ac *ApiController) GetState(w http.ResponseWriter, r *http.Request) {
	privileged := ac.auth.IsAdmin(r)
	tier := "public"
	if privileged {
		tier = "admin"
	}

	// The version is read before the snapshot, so a cached body is never older than its key.
	key := "state:" + tier + ":" + strconv.FormatUint(ac.service.Version(), 10)
	ac.serveFromCacheOrCompute(w, key, func() (any, error) {
		return models.Sanitize(ac.service.Snapshot(), privileged), nil
	})
}

func (ac *ApiController) CreateService(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	svc, err := ac.service.CreateService(&req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (ac *ApiController) UpdateService(w http.ResponseWriter, r *http.Request) {
	var patch models.ServicePatch
	if !decodeBody(w, r, &patch) {
		return
	}
	svc, err := ac.service.UpdateService(chi.URLParam(r, "id"), &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (ac *ApiController) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := ac.service.DeleteService(chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w)
}

func (ac *ApiController) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLinkRequest
	if !decodeBody(w, r, &req) {
		return
	}
	link, err := ac.service.CreateLink(&req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (ac *ApiController) UpdateLink(w http.ResponseWriter, r *http.Request) {
	var patch models.LinkPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	link, err := ac.service.UpdateLink(chi.URLParam(r, "id"), &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

func (ac *ApiController) DeleteLink(w http.ResponseWriter, r *http.Request) {
	if err := ac.service.DeleteLink(chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w)
}

func (ac *ApiController) CreateWolTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWolRequest
	if !decodeBody(w, r, &req) {
		return
	}
	task, err := ac.service.CreateWolTask(&req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (ac *ApiController) UpdateWolTask(w http.ResponseWriter, r *http.Request) {
	var patch models.WolPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	task, err := ac.service.UpdateWolTask(chi.URLParam(r, "id"), &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (ac *ApiController) DeleteWolTask(w http.ResponseWriter, r *http.Request) {
	if err := ac.service.DeleteWolTask(chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w)
}

func (ac *ApiController) Reorder(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := ac.service.Reorder(chi.URLParam(r, "collection"), req.Order); err != nil {
		writeServiceError(w, err)
		return
	}
	writeOK(w)
}

// RunWol answers 200 whatever the remote outcome; the outcome is in the body.
func (ac *ApiController) RunWol(w http.ResponseWriter, r *http.Request) {
	result, err := ac.executor.Run(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
