package usecase

import (
	"fmt"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
)

type ValidateMode int

const (
	// ModeCreate requires title and year; unsupplied optionals take defaults.
	ModeCreate ValidateMode = iota
	// ModeUpdate checks only supplied fields; the patch carries nothing else.
	ModeUpdate
)

// The first motion picture dates to 1888; used when config omits a bound.
const defaultYearMin = 1888

const maxGenres = 6

// MovieValidator normalizes a submitted movie payload into a canonical patch,
// or collects ordered human-readable messages when the payload is invalid.
type MovieValidator struct {
	yearMin int
}

func NewMovieValidator(yearMin int) *MovieValidator {
	if yearMin <= 0 {
		yearMin = defaultYearMin
	}
	return &MovieValidator{yearMin: yearMin}
}

// Validate is all-or-nothing: a non-empty message list means the request must
// be rejected without touching the store.
func (v *MovieValidator) Validate(payload *request.MoviePayload, mode ValidateMode) (*entity.MoviePatch, []string) {
	var messages []string
	patch := &entity.MoviePatch{}

	// Title
	if payload.Title != nil {
		title := strings.TrimSpace(*payload.Title)
		if title == "" {
			messages = append(messages, "title must not be empty")
		} else {
			patch.Title = &title
		}
	} else if mode == ModeCreate {
		messages = append(messages, "title must be provided")
	}

	// Year
	maxYear := time.Now().Year() + 1
	if payload.Year != nil {
		year := *payload.Year
		if year < v.yearMin || year > maxYear {
			messages = append(messages,
				fmt.Sprintf("year must be an integer between %d and %d", v.yearMin, maxYear))
		} else {
			patch.Year = &year
		}
	} else if mode == ModeCreate {
		messages = append(messages, "year must be provided")
	}

	// Genres: the legacy singular field and the list are interchangeable on
	// input; both normalize to one trimmed, deduplicated list.
	settingGenres := payload.Genres != nil || payload.Genre != nil
	if settingGenres {
		source := payload.Genres
		if source == nil {
			source = []string{*payload.Genre}
		}
		genres := normalizeGenres(source)
		switch {
		case len(genres) == 0:
			messages = append(messages, "genres must contain at least 1 genre")
		case len(genres) > maxGenres:
			messages = append(messages,
				fmt.Sprintf("genres must not contain more than %d genres", maxGenres))
		default:
			patch.Genres = genres
		}
	} else if mode == ModeCreate {
		// No genres on create falls back to the catch-all genre.
		patch.Genres = []string{"general"}
	}

	// Rating
	if payload.Rating.Present {
		switch {
		case payload.Rating.Invalid,
			!payload.Rating.Null && (payload.Rating.Value < 0 || payload.Rating.Value > 10):
			messages = append(messages, "rating must be a number between 0 and 10")
		case payload.Rating.Null:
			patch.RatingSet = true
		default:
			value := payload.Rating.Value
			patch.Rating = &value
			patch.RatingSet = true
		}
	}

	// Free-text optionals: empty string clears to null, absent leaves alone.
	if payload.Director != nil {
		patch.Director = normalizeOptionalText(*payload.Director)
		patch.DirectorSet = true
	}

	poster := payload.Poster
	if poster == nil {
		poster = payload.PosterURL
	}
	if poster != nil {
		patch.Poster = normalizeOptionalText(*poster)
		patch.PosterSet = true
	}

	if payload.Description != nil {
		patch.Description = normalizeOptionalText(*payload.Description)
		patch.DescriptionSet = true
	}

	if len(messages) > 0 {
		return nil, messages
	}
	return patch, nil
}

// normalizeGenres trims entries, drops empties, dedupes keeping first
// occurrence, and preserves order.
func normalizeGenres(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	genres := make([]string, 0, len(raw))
	for _, genre := range raw {
		genre = strings.TrimSpace(genre)
		if genre == "" || seen[genre] {
			continue
		}
		seen[genre] = true
		genres = append(genres, genre)
	}
	return genres
}

func normalizeOptionalText(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
