package request

import (
	"net/url"

	"movie-catalog/pkg/utils"
)

// MovieListParams are the raw list query parameters. Title/Genre/Year/Sort/
// Fields/IDs are passed through as submitted; the query builder normalizes
// and validates them against the store.
type MovieListParams struct {
	Title  string
	Genre  string
	Year   string
	Sort   string
	Fields string
	IDs    string
	Page   int
	Limit  int
}

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 50
)

// ParseMovieListParams reads the list query string. Page and limit fall back
// to their defaults on missing or malformed values; limit is capped at MaxLimit.
func ParseMovieListParams(query url.Values) *MovieListParams {
	params := &MovieListParams{
		Title:  query.Get("title"),
		Genre:  query.Get("genre"),
		Year:   query.Get("year"),
		Sort:   query.Get("sort"),
		Fields: query.Get("fields"),
		IDs:    query.Get("ids"),
		Page:   utils.ParseInt(query.Get("page"), DefaultPage),
		Limit:  utils.ParseInt(query.Get("limit"), DefaultLimit),
	}

	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}

	return params
}

// Offset returns how many documents to skip.
func (p *MovieListParams) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit)
}
