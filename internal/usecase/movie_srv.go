package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"
)

type MovieService interface {
	List(ctx context.Context, params *request.MovieListParams) (*response.MovieListResponse, error)
	GetByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	Create(ctx context.Context, payload *request.MoviePayload) (*response.MovieResponse, error)
	Update(ctx context.Context, movieID string, payload *request.MoviePayload) (*response.MovieResponse, error)
	Delete(ctx context.Context, movieID string) error
}

type movieService struct {
	repo      *repository.Repository
	validator *MovieValidator
	log       *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo:      repo,
		validator: NewMovieValidator(config.Catalog.YearMin),
		log:       log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) List(ctx context.Context, params *request.MovieListParams) (*response.MovieListResponse, error) {
	query, err := repository.BuildMovieQuery(params)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidFilter) {
			message := strings.TrimPrefix(err.Error(), repository.ErrInvalidFilter.Error()+": ")
			return nil, NewValidationError(message)
		}
		return nil, fmt.Errorf("build query: %w", err)
	}

	movies, total, err := s.repo.Movie.FindAll(ctx, query)
	if err != nil {
		s.log.Error("Failed to list movies",
			zap.Error(err),
			zap.Int("page", query.Page),
			zap.Int("limit", query.Limit),
		)
		return nil, fmt.Errorf("list movies: %w", err)
	}

	var items any
	if query.Fields != nil {
		projected := make([]map[string]any, len(movies))
		for i, movie := range movies {
			projected[i] = response.MovieToProjected(movie, query.Fields)
		}
		items = projected
	} else {
		full := make([]response.MovieResponse, len(movies))
		for i, movie := range movies {
			full[i] = response.MovieToResponse(movie)
		}
		items = full
	}

	s.log.Info("Movies listed",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.Int("page", query.Page),
		zap.Int("limit", query.Limit),
	)

	return response.NewMovieListResponse(items, query.Page, query.Limit, total), nil
}

func (s *movieService) GetByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid movie id", ErrInvalidID, movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %s", ErrNotFound, movieID)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) Create(ctx context.Context, payload *request.MoviePayload) (*response.MovieResponse, error) {
	patch, messages := s.validator.Validate(payload, ModeCreate)
	if len(messages) > 0 {
		s.log.Warn("Create movie validation failed", zap.Strings("errors", messages))
		return nil, &ValidationError{Messages: messages}
	}

	movie := &entity.Movie{
		Title:       *patch.Title,
		Year:        *patch.Year,
		Genres:      patch.Genres,
		Genre:       patch.Genres[0],
		Rating:      patch.Rating,
		Director:    patch.Director,
		Poster:      patch.Poster,
		Description: patch.Description,
		CreatedAt:   time.Now(),
	}

	id, err := s.repo.Movie.Create(ctx, movie)
	if err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}
	movie.ID = id

	s.log.Info("Movie created",
		zap.String("movie_id", id.Hex()),
		zap.String("title", movie.Title),
		zap.Strings("genres", movie.Genres),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) Update(ctx context.Context, movieID string, payload *request.MoviePayload) (*response.MovieResponse, error) {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid movie id", ErrInvalidID, movieID)
	}

	patch, messages := s.validator.Validate(payload, ModeUpdate)
	if len(messages) > 0 {
		s.log.Warn("Update movie validation failed",
			zap.String("movie_id", movieID),
			zap.Strings("errors", messages),
		)
		return nil, &ValidationError{Messages: messages}
	}

	if patch.IsEmpty() {
		return nil, ErrNoFields
	}

	set := bson.M{"updated_at": time.Now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Year != nil {
		set["year"] = *patch.Year
	}
	if patch.Genres != nil {
		set["genres"] = patch.Genres
		// keep the legacy scalar derivable from the list
		set["genre"] = patch.Genres[0]
	}
	if patch.RatingSet {
		set["rating"] = patch.Rating
	}
	if patch.DirectorSet {
		set["director"] = patch.Director
	}
	if patch.PosterSet {
		set["poster"] = patch.Poster
	}
	if patch.DescriptionSet {
		set["description"] = patch.Description
	}

	movie, err := s.repo.Movie.Update(ctx, id, set)
	if err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("update movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %s", ErrNotFound, movieID)
	}

	s.log.Info("Movie updated", zap.String("movie_id", movieID))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) Delete(ctx context.Context, movieID string) error {
	id, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return fmt.Errorf("%w: %q is not a valid movie id", ErrInvalidID, movieID)
	}

	deleted, err := s.repo.Movie.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("delete movie: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("%w: movie %s", ErrNotFound, movieID)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}
