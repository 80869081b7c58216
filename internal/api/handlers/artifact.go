package handlers

import (
	"net/http"

	"github.com/dom/teyvat-archive/internal/service"
	"go.uber.org/zap"
)

type ArtifactHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewArtifactHandler(catalogService *service.CatalogService, logger *zap.Logger) *ArtifactHandler {
	return &ArtifactHandler{catalogService: catalogService, logger: logger}
}

func (h *ArtifactHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	artifacts, err := h.catalogService.ListArtifactSets(r.Context())
	if err != nil {
		h.logger.Error("artifact.GetAll", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch artifacts")
		return
	}

	writeJSON(w, http.StatusOK, artifacts)
}
