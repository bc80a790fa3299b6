package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"
)

func wireRelation(
	r chi.Router,
	kind string,
	relationHandler *adaptor.RelationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Every relation route is session-scoped.
	r.Route("/api/"+kind, func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", relationHandler.List)
		r.Post("/", relationHandler.Add)
		r.Delete("/{movieId}", relationHandler.Remove)
	})
}
