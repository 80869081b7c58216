package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/teyvat-archive/internal/domain"
	"github.com/dom/teyvat-archive/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TeamHandler struct {
	teamService        *service.TeamService
	teamBuilderService *service.TeamBuilderService
	logger             *zap.Logger
}

func NewTeamHandler(teamService *service.TeamService, teamBuilderService *service.TeamBuilderService, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{
		teamService:        teamService,
		teamBuilderService: teamBuilderService,
		logger:             logger,
	}
}

func (h *TeamHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.logger.Error("team.GetAll", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch teams")
		return
	}

	writeJSON(w, http.StatusOK, teams)
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTeamInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid team data")
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), req)
	if err != nil {
		if domain.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, "Invalid team data: "+err.Error())
			return
		}
		h.logger.Error("team.Create", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to create team")
		return
	}

	writeJSON(w, http.StatusOK, team)
}

// Delete answers 200 whether or not the team existed
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.teamService.DeleteTeam(r.Context(), id); err != nil {
		h.logger.Error("team.Delete", zap.String("teamID", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete team")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Team deleted"})
}

func (h *TeamHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	analysis, err := h.teamBuilderService.AnalyzeTeam(r.Context(), id)
	if err != nil {
		h.logger.Error("team.Analysis", zap.String("teamID", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to analyze team")
		return
	}
	if analysis == nil {
		writeError(w, http.StatusNotFound, "Team not found")
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}
