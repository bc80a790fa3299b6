package repository

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"movie-catalog/internal/dto/request"
)

func paramsFrom(t *testing.T, rawQuery string) *request.MovieListParams {
	t.Helper()
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	return request.ParseMovieListParams(values)
}

func TestBuildMovieQueryDefaults(t *testing.T) {
	query, err := BuildMovieQuery(paramsFrom(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(query.Filter) != 0 {
		t.Errorf("want empty filter, got %v", query.Filter)
	}
	if query.Page != 1 || query.Limit != 12 {
		t.Errorf("want page=1 limit=12, got page=%d limit=%d", query.Page, query.Limit)
	}
	if query.Skip() != 0 {
		t.Errorf("want skip 0, got %d", query.Skip())
	}
	wantSort := bson.D{{Key: "year", Value: 1}}
	if len(query.Sort) != 1 || query.Sort[0] != wantSort[0] {
		t.Errorf("want default sort by year asc, got %v", query.Sort)
	}
	if query.Projection != nil || query.Fields != nil {
		t.Errorf("want no projection, got %v", query.Projection)
	}
}

func TestBuildMovieQueryPaginationClamps(t *testing.T) {
	query, err := BuildMovieQuery(paramsFrom(t, "page=0&limit=100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.Page != 1 {
		t.Errorf("page=0 should clamp to 1, got %d", query.Page)
	}
	if query.Limit != 50 {
		t.Errorf("limit=100 should clamp to 50, got %d", query.Limit)
	}

	query, err = BuildMovieQuery(paramsFrom(t, "page=3&limit=10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.Skip() != 20 {
		t.Errorf("want skip 20, got %d", query.Skip())
	}
}

func TestBuildMovieQueryTitleFilter(t *testing.T) {
	query, err := BuildMovieQuery(paramsFrom(t, "title=the+matrix"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clause, ok := query.Filter["title"].(bson.M)
	if !ok {
		t.Fatalf("want regex clause, got %v", query.Filter["title"])
	}
	if clause["$regex"] != "the matrix" || clause["$options"] != "i" {
		t.Errorf("got clause %v", clause)
	}
}

func TestBuildMovieQueryTitleEscapesRegex(t *testing.T) {
	query, err := BuildMovieQuery(paramsFrom(t, url.Values{"title": {"alien (1979)"}}.Encode()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clause := query.Filter["title"].(bson.M)
	if clause["$regex"] != `alien \(1979\)` {
		t.Errorf("metacharacters not escaped: %v", clause["$regex"])
	}
}

func TestBuildMovieQueryGenreMatchesBothFields(t *testing.T) {
	query, err := BuildMovieQuery(paramsFrom(t, "genre=Sci-Fi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	or, ok := query.Filter["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("want $or with two clauses, got %v", query.Filter["$or"])
	}
	if or[0].(bson.M)["genre"] != "Sci-Fi" || or[1].(bson.M)["genres"] != "Sci-Fi" {
		t.Errorf("got clauses %v", or)
	}
}

func TestBuildMovieQueryYear(t *testing.T) {
	query, err := BuildMovieQuery(paramsFrom(t, "year=1999"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.Filter["year"] != 1999 {
		t.Errorf("want exact year filter, got %v", query.Filter["year"])
	}

	for _, raw := range []string{"1700", "abc", "3000", fmt.Sprint(time.Now().Year() + 1)} {
		_, err := BuildMovieQuery(paramsFrom(t, "year="+raw))
		if !errors.Is(err, ErrInvalidFilter) {
			t.Errorf("year=%s: want ErrInvalidFilter, got %v", raw, err)
		}
	}
}

func TestBuildMovieQueryIDsBypassOtherFilters(t *testing.T) {
	good := primitive.NewObjectID()
	raw := "ids=not-an-id," + good.Hex() + "&title=ignored&genre=ignored&year=1700"

	query, err := BuildMovieQuery(paramsFrom(t, raw))
	if err != nil {
		t.Fatalf("ids must bypass the year filter, got %v", err)
	}

	clause, ok := query.Filter["_id"].(bson.M)
	if !ok {
		t.Fatalf("want _id clause, got %v", query.Filter)
	}
	in := clause["$in"].([]primitive.ObjectID)
	if len(in) != 1 || in[0] != good {
		t.Errorf("malformed id should be dropped, got %v", in)
	}
	if _, leaked := query.Filter["title"]; leaked {
		t.Error("title filter leaked past ids")
	}
}

func TestBuildMovieQueryIDsWidenLimit(t *testing.T) {
	hexes := func(n int) string {
		parts := make([]string, n)
		for i := range parts {
			parts[i] = primitive.NewObjectID().Hex()
		}
		return strings.Join(parts, ",")
	}

	// one page must hold every requested id
	query, err := BuildMovieQuery(paramsFrom(t, "ids="+hexes(20)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.Limit != 20 {
		t.Errorf("20 ids should widen the default limit, got %d", query.Limit)
	}

	// but never past the cap
	query, err = BuildMovieQuery(paramsFrom(t, "ids="+hexes(60)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.Limit != 50 {
		t.Errorf("want the cap, got %d", query.Limit)
	}

	// an explicit larger limit is left alone
	query, err = BuildMovieQuery(paramsFrom(t, "limit=30&ids="+hexes(2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.Limit != 30 {
		t.Errorf("explicit limit should stand, got %d", query.Limit)
	}
}

func TestBuildMovieQueryAllIDsMalformed(t *testing.T) {
	query, err := BuildMovieQuery(paramsFrom(t, "ids=nope,also-nope"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := query.Filter["_id"].(bson.M)["$in"].([]primitive.ObjectID)
	if len(in) != 0 {
		t.Errorf("want empty $in (matches nothing), got %v", in)
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		raw       string
		field     string
		direction int
	}{
		{"", "year", 1},
		{"year", "year", 1},
		{"year:asc", "year", 1},
		{"year:desc", "year", -1},
		{"title:desc", "title", -1},
		{"createdAt", "created_at", 1},
		{"rating:desc", "rating", -1},
		// loose parsing: unknown fields pass through ascending
		{"box_office", "box_office", 1},
	}

	for _, tc := range tests {
		sort := parseSort(tc.raw)
		if len(sort) != 1 || sort[0].Key != tc.field || sort[0].Value != tc.direction {
			t.Errorf("parseSort(%q) = %v, want %s %d", tc.raw, sort, tc.field, tc.direction)
		}
	}
}

func TestParseProjection(t *testing.T) {
	projection, fields := parseProjection("title,year,posterUrl,bogus")
	if len(fields) != 3 {
		t.Fatalf("want 3 known fields, got %v", fields)
	}
	if projection["title"] != 1 || projection["year"] != 1 {
		t.Errorf("got projection %v", projection)
	}
	// legacy alias projects the stored poster field
	if projection["poster"] != 1 {
		t.Errorf("posterUrl should project poster, got %v", projection)
	}
	if _, ok := projection["bogus"]; ok {
		t.Error("unknown field leaked into projection")
	}

	projection, fields = parseProjection("")
	if projection != nil || fields != nil {
		t.Errorf("empty fields should mean no projection, got %v %v", projection, fields)
	}

	projection, fields = parseProjection("only,unknown,names")
	if projection != nil || fields != nil {
		t.Errorf("all-unknown fields should mean no projection, got %v %v", projection, fields)
	}
}
