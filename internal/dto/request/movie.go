package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

// MoviePayload is the raw create/update body. Every field is optional at the
// decode stage; the movie validator decides what is required per mode. The
// legacy singular `genre` and the `posterUrl` alias are accepted alongside
// their canonical forms.
type MoviePayload struct {
	Title       *string     `json:"title"`
	Year        *int        `json:"year"`
	Genre       *string     `json:"genre"`
	Genres      []string    `json:"genres"`
	Rating      RatingInput `json:"rating"`
	Director    *string     `json:"director"`
	Poster      *string     `json:"poster"`
	PosterURL   *string     `json:"posterUrl"`
	Description *string     `json:"description"`
}

// RatingInput accepts a JSON number, a numeric string, null, or "". The empty
// string counts as not supplied at all, while null is an explicit clear. A
// present but unparseable value is recorded as invalid so validation can
// reject the whole request with a field message instead of a bare decode error.
type RatingInput struct {
	Present bool
	Null    bool
	Invalid bool
	Value   float64
}

func (r *RatingInput) UnmarshalJSON(data []byte) error {
	r.Present = true

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		r.Null = true
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			r.Invalid = true
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			// as if the field had been left out of the body entirely
			*r = RatingInput{}
			return nil
		}
		value, err := strconv.ParseFloat(s, 64)
		if err != nil {
			r.Invalid = true
			return nil
		}
		r.Value = value
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		r.Invalid = true
		return nil
	}
	r.Value = value
	return nil
}
