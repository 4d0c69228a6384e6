package controllers

import (
	"net/http"
	"os"
	"wadboard/internal/providers"
	"wadboard/internal/structures"
)

// FrontendController serves the single-page UI from disk.
type FrontendController struct {
	indexPath string
	logger    providers.Logger
}

func NewFrontendController(conf *structures.Config, logger providers.Logger) *FrontendController {
	return &FrontendController{indexPath: conf.Frontend.IndexPath, logger: logger}
}

func (fc *FrontendController) Index(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(fc.indexPath); err != nil {
		fc.logger.Warnf(providers.TypeHTTP, "Frontend file %s unavailable: %s", fc.indexPath, err)
		NotFound(w, r)
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, fc.indexPath)
}
