package repository

import (
	"go.uber.org/zap"

	"movie-catalog/pkg/database"
)

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	Movie     MovieRepository
	Likes     RelationRepository
	Watchlist RelationRepository
}

func NewRepository(db *database.DB, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		Movie:     NewMovieRepository(db, log),
		Likes:     NewRelationRepository(db, "likes", log),
		Watchlist: NewRelationRepository(db, "watchlist", log),
	}
}
