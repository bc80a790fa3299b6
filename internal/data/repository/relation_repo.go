package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"
)

// RelationRepository stores one membership document per (user, movie) pair.
// The same implementation backs both relation kinds; only the collection
// name differs.
type RelationRepository interface {
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error)
	Add(ctx context.Context, userID, movieID primitive.ObjectID) error
	Remove(ctx context.Context, userID, movieID primitive.ObjectID) error
}

type relationRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewRelationRepository(db *database.DB, collection string, log *zap.Logger) RelationRepository {
	return &relationRepository{
		coll: db.Collection(collection),
		log:  log.With(zap.String("repository", collection)),
	}
}

func (r *relationRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		r.log.Error("Failed to list relations",
			zap.Error(err),
			zap.String("user_id", userID.Hex()),
		)
		return nil, fmt.Errorf("list relations: %w", err)
	}
	defer cursor.Close(ctx)

	relations := make([]entity.Relation, 0)
	if err := cursor.All(ctx, &relations); err != nil {
		r.log.Error("Failed to decode relations", zap.Error(err))
		return nil, fmt.Errorf("decode relations: %w", err)
	}

	movieIDs := make([]primitive.ObjectID, len(relations))
	for i, relation := range relations {
		movieIDs[i] = relation.MovieID
	}

	return movieIDs, nil
}

// Add upserts the membership document, so adding an existing pair is a no-op.
func (r *relationRepository) Add(ctx context.Context, userID, movieID primitive.ObjectID) error {
	filter := bson.M{"user_id": userID, "movie_id": movieID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"user_id":    userID,
			"movie_id":   movieID,
			"created_at": time.Now(),
		},
	}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		r.log.Error("Failed to add relation",
			zap.Error(err),
			zap.String("user_id", userID.Hex()),
			zap.String("movie_id", movieID.Hex()),
		)
		return fmt.Errorf("add relation: %w", err)
	}

	return nil
}

// Remove deletes the membership document. Removing a non-member is a no-op.
func (r *relationRepository) Remove(ctx context.Context, userID, movieID primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "movie_id": movieID})
	if err != nil {
		r.log.Error("Failed to remove relation",
			zap.Error(err),
			zap.String("user_id", userID.Hex()),
			zap.String("movie_id", movieID.Hex()),
		)
		return fmt.Errorf("remove relation: %w", err)
	}

	return nil
}
