package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"
)

type MovieRepository interface {
	FindAll(ctx context.Context, query *MovieQuery) ([]*entity.Movie, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error)
	Create(ctx context.Context, movie *entity.Movie) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*entity.Movie, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type movieRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMovieRepository(db *database.DB, log *zap.Logger) MovieRepository {
	return &movieRepository{
		coll: db.Collection("movies"),
		log:  log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindAll(ctx context.Context, query *MovieQuery) ([]*entity.Movie, int64, error) {
	total, err := r.coll.CountDocuments(ctx, query.Filter)
	if err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	opts := options.Find().
		SetSort(query.Sort).
		SetSkip(query.Skip()).
		SetLimit(int64(query.Limit))
	if query.Projection != nil {
		opts.SetProjection(query.Projection)
	}

	cursor, err := r.coll.Find(ctx, query.Filter, opts)
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, 0, fmt.Errorf("find movies: %w", err)
	}
	defer cursor.Close(ctx)

	movies := make([]*entity.Movie, 0)
	if err := cursor.All(ctx, &movies); err != nil {
		r.log.Error("Failed to decode movies", zap.Error(err))
		return nil, 0, fmt.Errorf("decode movies: %w", err)
	}

	return movies, total, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Movie, error) {
	var movie entity.Movie
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie",
			zap.Error(err),
			zap.String("movie_id", id.Hex()),
		)
		return nil, fmt.Errorf("find movie: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, movie)
	if err != nil {
		r.log.Error("Failed to insert movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return primitive.NilObjectID, fmt.Errorf("insert movie: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert movie: unexpected inserted id type %T", result.InsertedID)
	}

	return id, nil
}

// Update applies a $set patch and returns the post-update document, or nil
// when no document matched.
func (r *movieRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*entity.Movie, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var movie entity.Movie
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", id.Hex()),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.Hex()),
		)
		return 0, fmt.Errorf("delete movie: %w", err)
	}

	return result.DeletedCount, nil
}
