package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/middleware"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/movies", func(r chi.Router) {
		// Reads are public
		r.Get("/", movieHandler.List)
		r.Get("/{id}", movieHandler.GetByID)

		// Mutations require an authenticated admin
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, repo.User, log))
			r.Use(middleware.RequireAdmin(log))

			r.Post("/", movieHandler.Create)
			r.Put("/{id}", movieHandler.Update)
			r.Delete("/{id}", movieHandler.Delete)
		})
	})
}
