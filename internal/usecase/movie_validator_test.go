package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"movie-catalog/internal/dto/request"
)

func decodePayload(t *testing.T, body string) *request.MoviePayload {
	t.Helper()
	var payload request.MoviePayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return &payload
}

func TestValidateCreate(t *testing.T) {
	v := NewMovieValidator(1888)

	patch, messages := v.Validate(decodePayload(t,
		`{"title":"Dune","year":2021,"genres":["Sci-Fi","Adventure"]}`), ModeCreate)
	if messages != nil {
		t.Fatalf("unexpected messages: %v", messages)
	}
	if *patch.Title != "Dune" || *patch.Year != 2021 {
		t.Errorf("got title=%q year=%d", *patch.Title, *patch.Year)
	}
	if len(patch.Genres) != 2 || patch.Genres[0] != "Sci-Fi" {
		t.Errorf("got genres %v", patch.Genres)
	}
	if patch.Rating != nil || patch.RatingSet {
		t.Errorf("rating should be untouched, got %v set=%v", patch.Rating, patch.RatingSet)
	}
}

func TestValidateCreateMissingRequired(t *testing.T) {
	v := NewMovieValidator(1888)

	_, messages := v.Validate(decodePayload(t, `{}`), ModeCreate)
	if len(messages) != 2 {
		t.Fatalf("want 2 messages, got %v", messages)
	}
	if messages[0] != "title must be provided" || messages[1] != "year must be provided" {
		t.Errorf("unexpected messages %v", messages)
	}
}

func TestValidateCreateDefaultsGenre(t *testing.T) {
	v := NewMovieValidator(1888)

	patch, messages := v.Validate(decodePayload(t, `{"title":"Sans Genre","year":1999}`), ModeCreate)
	if messages != nil {
		t.Fatalf("unexpected messages: %v", messages)
	}
	if len(patch.Genres) != 1 || patch.Genres[0] != "general" {
		t.Errorf("want fallback genre, got %v", patch.Genres)
	}
}

func TestValidateYearBounds(t *testing.T) {
	v := NewMovieValidator(1888)
	maxYear := time.Now().Year() + 1

	tests := []struct {
		year  int
		valid bool
	}{
		{1887, false},
		{1888, true},
		{maxYear, true},
		{maxYear + 1, false},
	}

	for _, tc := range tests {
		body := fmt.Sprintf(`{"title":"X","year":%d,"genres":["Drama"]}`, tc.year)
		_, messages := v.Validate(decodePayload(t, body), ModeCreate)
		if tc.valid && messages != nil {
			t.Errorf("year %d: unexpected messages %v", tc.year, messages)
		}
		if !tc.valid {
			if len(messages) == 0 || !strings.Contains(messages[0], "year must be") {
				t.Errorf("year %d: want year message, got %v", tc.year, messages)
			}
		}
	}
}

func TestValidateGenresNormalization(t *testing.T) {
	v := NewMovieValidator(1888)

	// trim, drop empties, dedupe keeping first occurrence
	patch, messages := v.Validate(decodePayload(t,
		`{"title":"X","year":2000,"genres":[" Drama","","Drama","Comedy "]}`), ModeCreate)
	if messages != nil {
		t.Fatalf("unexpected messages: %v", messages)
	}
	if len(patch.Genres) != 2 || patch.Genres[0] != "Drama" || patch.Genres[1] != "Comedy" {
		t.Errorf("got genres %v", patch.Genres)
	}

	// legacy singular field
	patch, messages = v.Validate(decodePayload(t,
		`{"title":"X","year":2000,"genre":"Horror"}`), ModeCreate)
	if messages != nil {
		t.Fatalf("unexpected messages: %v", messages)
	}
	if len(patch.Genres) != 1 || patch.Genres[0] != "Horror" {
		t.Errorf("got genres %v", patch.Genres)
	}

	// explicitly set but empty after normalization
	_, messages = v.Validate(decodePayload(t,
		`{"title":"X","year":2000,"genres":["  ",""]}`), ModeCreate)
	if len(messages) != 1 || messages[0] != "genres must contain at least 1 genre" {
		t.Errorf("want empty-genres message, got %v", messages)
	}

	// over the cap
	_, messages = v.Validate(decodePayload(t,
		`{"title":"X","year":2000,"genres":["a","b","c","d","e","f","g"]}`), ModeCreate)
	if len(messages) != 1 || !strings.Contains(messages[0], "more than 6") {
		t.Errorf("want cap message, got %v", messages)
	}
}

func TestValidateRating(t *testing.T) {
	v := NewMovieValidator(1888)

	tests := []struct {
		name    string
		body    string
		wantErr bool
		want    *float64
		wantSet bool
	}{
		{"number", `{"title":"X","year":2000,"rating":7.5}`, false, ptrFloat(7.5), true},
		{"numeric string", `{"title":"X","year":2000,"rating":"8"}`, false, ptrFloat(8), true},
		{"null clears", `{"title":"X","year":2000,"rating":null}`, false, nil, true},
		{"empty string is absent", `{"title":"X","year":2000,"rating":""}`, false, nil, false},
		{"too high", `{"title":"X","year":2000,"rating":10.5}`, true, nil, false},
		{"negative", `{"title":"X","year":2000,"rating":-1}`, true, nil, false},
		{"not a number", `{"title":"X","year":2000,"rating":"great"}`, true, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			patch, messages := v.Validate(decodePayload(t, tc.body), ModeCreate)
			if tc.wantErr {
				if len(messages) != 1 || messages[0] != "rating must be a number between 0 and 10" {
					t.Fatalf("want rating message, got %v", messages)
				}
				return
			}
			if messages != nil {
				t.Fatalf("unexpected messages: %v", messages)
			}
			if patch.RatingSet != tc.wantSet {
				t.Errorf("RatingSet = %v, want %v", patch.RatingSet, tc.wantSet)
			}
			if tc.want == nil && patch.Rating != nil {
				t.Errorf("want nil rating, got %v", *patch.Rating)
			}
			if tc.want != nil && (patch.Rating == nil || *patch.Rating != *tc.want) {
				t.Errorf("want rating %v, got %v", *tc.want, patch.Rating)
			}
		})
	}
}

func TestValidateUpdatePartial(t *testing.T) {
	v := NewMovieValidator(1888)

	// nothing supplied: valid, but carries no fields
	patch, messages := v.Validate(decodePayload(t, `{}`), ModeUpdate)
	if messages != nil {
		t.Fatalf("unexpected messages: %v", messages)
	}
	if !patch.IsEmpty() {
		t.Error("patch should be empty")
	}

	// only title
	patch, messages = v.Validate(decodePayload(t, `{"title":" New Title "}`), ModeUpdate)
	if messages != nil {
		t.Fatalf("unexpected messages: %v", messages)
	}
	if patch.IsEmpty() || *patch.Title != "New Title" {
		t.Errorf("got %+v", patch)
	}
	if patch.Year != nil || patch.Genres != nil || patch.DirectorSet {
		t.Error("untouched fields leaked into the patch")
	}

	// empty title still rejected in update mode
	_, messages = v.Validate(decodePayload(t, `{"title":"  "}`), ModeUpdate)
	if len(messages) != 1 || messages[0] != "title must not be empty" {
		t.Errorf("want title message, got %v", messages)
	}

	// an empty-string rating does not count as a supplied field: the stored
	// value stays untouched, unlike an explicit null which clears it
	patch, messages = v.Validate(decodePayload(t, `{"rating":""}`), ModeUpdate)
	if messages != nil {
		t.Fatalf("unexpected messages: %v", messages)
	}
	if !patch.IsEmpty() {
		t.Errorf("rating \"\" leaked into the patch: set=%v val=%v", patch.RatingSet, patch.Rating)
	}

	patch, messages = v.Validate(decodePayload(t, `{"rating":null}`), ModeUpdate)
	if messages != nil {
		t.Fatalf("unexpected messages: %v", messages)
	}
	if !patch.RatingSet || patch.Rating != nil {
		t.Errorf("rating null should clear, got set=%v val=%v", patch.RatingSet, patch.Rating)
	}
}

func TestValidateOptionalTextClearing(t *testing.T) {
	v := NewMovieValidator(1888)

	// empty string is an explicit clear
	patch, messages := v.Validate(decodePayload(t,
		`{"director":"","description":" Long plot. ","poster":""}`), ModeUpdate)
	if messages != nil {
		t.Fatalf("unexpected messages: %v", messages)
	}
	if !patch.DirectorSet || patch.Director != nil {
		t.Errorf("director should clear to null, got set=%v val=%v", patch.DirectorSet, patch.Director)
	}
	if !patch.PosterSet || patch.Poster != nil {
		t.Errorf("poster should clear to null, got set=%v val=%v", patch.PosterSet, patch.Poster)
	}
	if !patch.DescriptionSet || patch.Description == nil || *patch.Description != "Long plot." {
		t.Errorf("description should be trimmed, got %+v", patch.Description)
	}

	// legacy posterUrl alias feeds the canonical field
	patch, messages = v.Validate(decodePayload(t,
		`{"posterUrl":"https://example.com/p.jpg"}`), ModeUpdate)
	if messages != nil {
		t.Fatalf("unexpected messages: %v", messages)
	}
	if !patch.PosterSet || patch.Poster == nil || *patch.Poster != "https://example.com/p.jpg" {
		t.Errorf("posterUrl alias not honored: %+v", patch.Poster)
	}
}

func ptrFloat(f float64) *float64 {
	return &f
}
