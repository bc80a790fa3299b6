package usecase

import (
	"go.uber.org/zap"

	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"
)

type Service struct {
	Auth      AuthService
	Movie     MovieService
	Likes     RelationService
	Watchlist RelationService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Movie:     NewMovieService(repo, config, log),
		Likes:     NewRelationService(repo.Likes, "likes", log),
		Watchlist: NewRelationService(repo.Watchlist, "watchlist", log),
	}
}
