package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is the catalog document. Genres is the canonical genre list; Genre is
// the stored legacy scalar and always equals Genres[0]. Optional fields are
// pointers so an absent value round-trips as null.
type Movie struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Year        int                `json:"year" bson:"year"`
	Genre       string             `json:"genre" bson:"genre"`
	Genres      []string           `json:"genres" bson:"genres"`
	Rating      *float64           `json:"rating" bson:"rating"`
	Director    *string            `json:"director" bson:"director"`
	Poster      *string            `json:"poster" bson:"poster"`
	Description *string            `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// MoviePatch is the validated, field-sparse form of a create/update request.
// A nil pointer means the field was not supplied and must not be touched.
// Rating/Director/Poster/Description carry an explicit Set flag because
// "set to null" and "leave alone" are different instructions.
type MoviePatch struct {
	Title          *string
	Year           *int
	Genres         []string
	Rating         *float64
	RatingSet      bool
	Director       *string
	DirectorSet    bool
	Poster         *string
	PosterSet      bool
	Description    *string
	DescriptionSet bool
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *MoviePatch) IsEmpty() bool {
	return p.Title == nil &&
		p.Year == nil &&
		p.Genres == nil &&
		!p.RatingSet &&
		!p.DirectorSet &&
		!p.PosterSet &&
		!p.DescriptionSet
}
