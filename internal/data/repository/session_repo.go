package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, token string) (*entity.Session, error)
	Revoke(ctx context.Context, token string) error
}

type sessionRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewSessionRepository(db *database.DB, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		coll: db.Collection("sessions"),
		log:  log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if _, err := r.coll.InsertOne(ctx, session); err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", session.UserID.Hex()),
		)
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

// FindValidSession returns the unexpired session for the token, nil when the
// token is unknown or past its expiry.
func (r *sessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	filter := bson.M{
		"token":      token,
		"expires_at": bson.M{"$gt": time.Now()},
	}

	var session entity.Session
	err := r.coll.FindOne(ctx, filter).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find session", zap.Error(err))
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &session, nil
}

// Revoke deletes the session. Revoking an unknown token is not an error.
func (r *sessionRepository) Revoke(ctx context.Context, token string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"token": token}); err != nil {
		r.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}
