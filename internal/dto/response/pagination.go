package response

import (
	"movie-catalog/pkg/utils"
)

// MovieListResponse is the paginated list envelope. Items holds either full
// movie responses or projected field maps.
type MovieListResponse struct {
	Items      any   `json:"items"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewMovieListResponse(items any, page, limit int, total int64) *MovieListResponse {
	return &MovieListResponse{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: utils.CalculateTotalPages(total, limit),
	}
}
