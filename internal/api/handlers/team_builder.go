package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/teyvat-archive/internal/domain"
	"github.com/dom/teyvat-archive/internal/service"
	"go.uber.org/zap"
)

type TeamBuilderHandler struct {
	teamBuilderService *service.TeamBuilderService
	logger             *zap.Logger
}

func NewTeamBuilderHandler(teamBuilderService *service.TeamBuilderService, logger *zap.Logger) *TeamBuilderHandler {
	return &TeamBuilderHandler{teamBuilderService: teamBuilderService, logger: logger}
}

type AnalyzeRequest struct {
	CharacterIDs []string `json:"characterIds"`
}

func (h *TeamBuilderHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	analysis, err := h.teamBuilderService.AnalyzeSelection(r.Context(), req.CharacterIDs)
	if err != nil {
		if domain.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("teamBuilder.Analyze", zap.Strings("characterIDs", req.CharacterIDs), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to analyze team")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

func (h *TeamBuilderHandler) Reactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.teamBuilderService.Reactions())
}
