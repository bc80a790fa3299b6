package adaptor

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"
)

type Handler struct {
	Auth      *AuthHandler
	Movie     *MovieHandler
	Likes     *RelationHandler
	Watchlist *RelationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Movie:     NewMovieHandler(service.Movie, log),
		Likes:     NewRelationHandler(service.Likes, "likes", log),
		Watchlist: NewRelationHandler(service.Watchlist, "watchlist", log),
	}
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is logged and answered with a generic 500;
// internal detail never reaches the caller.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Strings("errors", validationErr.Messages))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Messages)

	case errors.Is(err, usecase.ErrInvalidID):
		log.Warn(operation+" with malformed id", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNoFields):
		log.Warn(operation + " with empty patch")
		utils.ResponseBadRequest(w, usecase.ErrNoFields.Error(), nil)

	case errors.Is(err, usecase.ErrUsernameTaken):
		log.Warn(operation + " with taken username")
		utils.ResponseBadRequest(w, usecase.ErrUsernameTaken.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" target missing", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation + " with invalid credentials")
		utils.ResponseUnauthorized(w, "Invalid credentials")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
