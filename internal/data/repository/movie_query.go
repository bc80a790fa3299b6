package repository

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"movie-catalog/internal/dto/request"
)

// ErrInvalidFilter marks a list query that cannot be turned into a store
// filter (currently only a malformed/out-of-range year).
var ErrInvalidFilter = errors.New("invalid filter")

// Read-side sanity window for the year filter. This is a filter bound, not
// the write-path entity invariant, which is configured separately.
const queryYearMin = 1800

// MovieQuery is the store-ready form of a list request: filter, sort,
// projection and a pagination window, plus the normalized projection field
// names for shaping the response.
type MovieQuery struct {
	Filter     bson.M
	Sort       bson.D
	Projection bson.M
	Fields     []string
	Page       int
	Limit      int
}

func (q *MovieQuery) Skip() int64 {
	return int64((q.Page - 1) * q.Limit)
}

// sortFields maps exposed sort keys to stored field names.
var sortFields = map[string]string{
	"title":      "title",
	"year":       "year",
	"genre":      "genre",
	"rating":     "rating",
	"created_at": "created_at",
	"createdAt":  "created_at",
	"updated_at": "updated_at",
	"updatedAt":  "updated_at",
}

// projectableFields maps exposed field names to stored field names. Legacy
// aliases project the same stored field as their canonical form.
var projectableFields = map[string]string{
	"title":       "title",
	"year":        "year",
	"genre":       "genre",
	"genres":      "genres",
	"rating":      "rating",
	"director":    "director",
	"poster":      "poster",
	"posterUrl":   "poster",
	"description": "description",
	"created_at":  "created_at",
	"createdAt":   "created_at",
	"updated_at":  "updated_at",
	"updatedAt":   "updated_at",
}

// BuildMovieQuery turns list parameters into a MovieQuery. An `ids` parameter
// bypasses every other filter; malformed ids are dropped, not errored. A year
// filter outside [1800, currentYear] rejects the request with ErrInvalidFilter.
func BuildMovieQuery(params *request.MovieListParams) (*MovieQuery, error) {
	query := &MovieQuery{
		Filter: bson.M{},
		Sort:   parseSort(params.Sort),
		Page:   params.Page,
		Limit:  params.Limit,
	}

	if query.Page < 1 {
		query.Page = request.DefaultPage
	}
	if query.Limit < 1 {
		query.Limit = request.DefaultLimit
	}
	if query.Limit > request.MaxLimit {
		query.Limit = request.MaxLimit
	}

	query.Projection, query.Fields = parseProjection(params.Fields)

	// ids short-circuits every other filter: fetch exactly these documents.
	if params.IDs != "" {
		ids := make([]primitive.ObjectID, 0)
		for _, raw := range strings.Split(params.IDs, ",") {
			id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
		// the window must hold every requested id, up to the page cap
		if len(ids) > query.Limit {
			query.Limit = len(ids)
			if query.Limit > request.MaxLimit {
				query.Limit = request.MaxLimit
			}
		}
		query.Filter = bson.M{"_id": bson.M{"$in": ids}}
		return query, nil
	}

	if params.Title != "" {
		query.Filter["title"] = bson.M{
			"$regex":   regexp.QuoteMeta(params.Title),
			"$options": "i",
		}
	}

	if params.Genre != "" {
		// Match the legacy scalar or membership in the canonical list.
		query.Filter["$or"] = bson.A{
			bson.M{"genre": params.Genre},
			bson.M{"genres": params.Genre},
		}
	}

	if params.Year != "" {
		maxYear := time.Now().Year()
		year, err := strconv.Atoi(params.Year)
		if err != nil || year < queryYearMin || year > maxYear {
			return nil, fmt.Errorf("%w: year must be an integer between %d and %d",
				ErrInvalidFilter, queryYearMin, maxYear)
		}
		query.Filter["year"] = year
	}

	return query, nil
}

// parseSort reads a `field:asc|desc` directive, defaulting to ascending year.
// The parser is deliberately loose: anything without a `:desc` suffix sorts
// ascending on whatever field precedes the colon.
func parseSort(raw string) bson.D {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return bson.D{{Key: "year", Value: 1}}
	}

	direction := 1
	field := raw
	if strings.HasSuffix(raw, ":desc") {
		direction = -1
		field = strings.TrimSuffix(raw, ":desc")
	} else {
		field = strings.TrimSuffix(raw, ":asc")
	}

	field = strings.TrimSpace(field)
	if mapped, ok := sortFields[field]; ok {
		field = mapped
	}
	if field == "" {
		return bson.D{{Key: "year", Value: 1}}
	}

	return bson.D{{Key: field, Value: direction}}
}

// parseProjection reads the comma-separated field allow-list. Unknown fields
// are ignored; the identity is always part of the result. Returns nil maps
// when no projection was requested.
func parseProjection(raw string) (bson.M, []string) {
	if raw == "" {
		return nil, nil
	}

	projection := bson.M{}
	fields := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		stored, ok := projectableFields[name]
		if !ok {
			continue
		}
		projection[stored] = 1
		fields = append(fields, name)
	}

	if len(fields) == 0 {
		return nil, nil
	}
	return projection, fields
}
