package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// List handles GET /api/movies
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	params := request.ParseMovieListParams(r.URL.Query())

	movies, err := h.service.List(r.Context(), params)
	if err != nil {
		respondServiceError(w, h.log, err, "list movies")
		return
	}

	// The paginated envelope is the response body itself, not wrapped.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(movies)
}

// GetByID handles GET /api/movies/{id}
func (h *MovieHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	movie, err := h.service.GetByID(r.Context(), movieID)
	if err != nil {
		respondServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// Create handles POST /api/movies (admin only)
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload request.MoviePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.Create(r.Context(), &payload)
	if err != nil {
		respondServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// Update handles PUT /api/movies/{id} (admin only)
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	var payload request.MoviePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.Update(r.Context(), movieID, &payload)
	if err != nil {
		respondServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// Delete handles DELETE /api/movies/{id} (admin only)
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), movieID); err != nil {
		respondServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}
