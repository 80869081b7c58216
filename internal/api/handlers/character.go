package handlers

import (
	"net/http"

	"github.com/dom/teyvat-archive/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CharacterHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewCharacterHandler(catalogService *service.CatalogService, logger *zap.Logger) *CharacterHandler {
	return &CharacterHandler{catalogService: catalogService, logger: logger}
}

func (h *CharacterHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	characters, err := h.catalogService.ListCharacters(r.Context())
	if err != nil {
		h.logger.Error("character.GetAll", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch characters")
		return
	}

	writeJSON(w, http.StatusOK, characters)
}

func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	character, err := h.catalogService.GetCharacter(r.Context(), id)
	if err != nil {
		h.logger.Error("character.Get", zap.String("characterID", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch character")
		return
	}
	if character == nil {
		writeError(w, http.StatusNotFound, "Character not found")
		return
	}

	writeJSON(w, http.StatusOK, character)
}
