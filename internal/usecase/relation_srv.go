package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"movie-catalog/internal/data/repository"
)

// RelationService manages one per-user movie set (likes or watchlist). The
// acting user is always the session identity; add and remove are idempotent
// and answer with the post-operation list.
type RelationService interface {
	List(ctx context.Context, userID primitive.ObjectID) ([]string, error)
	Add(ctx context.Context, userID primitive.ObjectID, movieID string) ([]string, error)
	Remove(ctx context.Context, userID primitive.ObjectID, movieID string) ([]string, error)
}

type relationService struct {
	repo repository.RelationRepository
	kind string
	log  *zap.Logger
}

func NewRelationService(repo repository.RelationRepository, kind string, log *zap.Logger) RelationService {
	return &relationService{
		repo: repo,
		kind: kind,
		log:  log.With(zap.String("service", kind)),
	}
}

func (s *relationService) List(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	movieIDs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list relations",
			zap.Error(err),
			zap.String("user_id", userID.Hex()),
		)
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}

	return hexIDs(movieIDs), nil
}

func (s *relationService) Add(ctx context.Context, userID primitive.ObjectID, movieID string) ([]string, error) {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid movie id", ErrInvalidID, movieID)
	}

	if err := s.repo.Add(ctx, userID, id); err != nil {
		s.log.Error("Failed to add relation",
			zap.Error(err),
			zap.String("user_id", userID.Hex()),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("add to %s: %w", s.kind, err)
	}

	s.log.Info("Relation added",
		zap.String("user_id", userID.Hex()),
		zap.String("movie_id", movieID),
	)

	return s.List(ctx, userID)
}

func (s *relationService) Remove(ctx context.Context, userID primitive.ObjectID, movieID string) ([]string, error) {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid movie id", ErrInvalidID, movieID)
	}

	if err := s.repo.Remove(ctx, userID, id); err != nil {
		s.log.Error("Failed to remove relation",
			zap.Error(err),
			zap.String("user_id", userID.Hex()),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("remove from %s: %w", s.kind, err)
	}

	s.log.Info("Relation removed",
		zap.String("user_id", userID.Hex()),
		zap.String("movie_id", movieID),
	)

	return s.List(ctx, userID)
}

func hexIDs(ids []primitive.ObjectID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Hex()
	}
	return out
}
