package handlers

import (
	"net/http"
	"time"

	"github.com/dom/teyvat-archive/internal/domain"
	"github.com/dom/teyvat-archive/internal/service"
	"go.uber.org/zap"
)

type FarmingDomainHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewFarmingDomainHandler(catalogService *service.CatalogService, logger *zap.Logger) *FarmingDomainHandler {
	return &FarmingDomainHandler{catalogService: catalogService, logger: logger}
}

// GetAll lists farming domains, optionally only those open on ?day=
func (h *FarmingDomainHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var day *time.Weekday
	if raw := r.URL.Query().Get("day"); raw != "" {
		parsed, err := domain.ParseWeekday(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid day: "+raw)
			return
		}
		day = &parsed
	}

	domains, err := h.catalogService.ListFarmingDomains(r.Context(), day)
	if err != nil {
		h.logger.Error("domain.GetAll", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch domains")
		return
	}

	writeJSON(w, http.StatusOK, domains)
}
