package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"
)

// RelationHandler serves one relation kind (likes or watchlist). The acting
// user is always the session identity; the movie id never identifies a user.
type RelationHandler struct {
	service usecase.RelationService
	kind    string
	log     *zap.Logger
}

func NewRelationHandler(service usecase.RelationService, kind string, log *zap.Logger) *RelationHandler {
	return &RelationHandler{
		service: service,
		kind:    kind,
		log:     log.With(zap.String("handler", kind)),
	}
}

// List handles GET /api/{likes|watchlist}
func (h *RelationHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieIDs, err := h.service.List(r.Context(), identity.ID)
	if err != nil {
		respondServiceError(w, h.log, err, "list "+h.kind)
		return
	}

	utils.ResponseSuccess(w, "success", movieIDs)
}

// Add handles POST /api/{likes|watchlist}
func (h *RelationHandler) Add(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req struct {
		MovieID string `json:"movieId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if req.MovieID == "" {
		utils.ResponseBadRequest(w, "movieId is required", nil)
		return
	}

	movieIDs, err := h.service.Add(r.Context(), identity.ID, req.MovieID)
	if err != nil {
		respondServiceError(w, h.log, err, "add to "+h.kind)
		return
	}

	utils.ResponseSuccess(w, "success", movieIDs)
}

// Remove handles DELETE /api/{likes|watchlist}/{movieId}
func (h *RelationHandler) Remove(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID := chi.URLParam(r, "movieId")
	if movieID == "" {
		utils.ResponseBadRequest(w, "movieId is required", nil)
		return
	}

	movieIDs, err := h.service.Remove(r.Context(), identity.ID, movieID)
	if err != nil {
		respondServiceError(w, h.log, err, "remove from "+h.kind)
		return
	}

	utils.ResponseSuccess(w, "success", movieIDs)
}
