package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

// MovieResponse is the wire form of a movie. `genre` mirrors `genres[0]` and
// `posterUrl` mirrors `poster` for legacy clients; `rating` is emitted as null
// when no rating is set, never dropped.
type MovieResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Year        int        `json:"year"`
	Genre       string     `json:"genre"`
	Genres      []string   `json:"genres"`
	Rating      *float64   `json:"rating"`
	Director    *string    `json:"director"`
	Poster      *string    `json:"poster"`
	PosterURL   *string    `json:"posterUrl"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.Hex(),
		Title:       movie.Title,
		Year:        movie.Year,
		Genre:       movie.Genre,
		Genres:      movie.Genres,
		Rating:      movie.Rating,
		Director:    movie.Director,
		Poster:      movie.Poster,
		PosterURL:   movie.Poster,
		Description: movie.Description,
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}
}

// MovieToProjected keeps only the requested fields (id always included), for
// list calls that asked for a projection.
func MovieToProjected(movie *entity.Movie, fields []string) map[string]any {
	full := MovieToResponse(movie)

	projected := map[string]any{"id": full.ID}
	for _, field := range fields {
		switch field {
		case "title":
			projected["title"] = full.Title
		case "year":
			projected["year"] = full.Year
		case "genre":
			projected["genre"] = full.Genre
		case "genres":
			projected["genres"] = full.Genres
		case "rating":
			projected["rating"] = full.Rating
		case "director":
			projected["director"] = full.Director
		case "poster":
			projected["poster"] = full.Poster
		case "posterUrl":
			projected["posterUrl"] = full.PosterURL
		case "description":
			projected["description"] = full.Description
		case "created_at", "createdAt":
			projected["created_at"] = full.CreatedAt
		case "updated_at", "updatedAt":
			projected["updated_at"] = full.UpdatedAt
		}
	}

	return projected
}
