package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Relation is one per-user membership fact (a like or a watchlist entry).
// Exactly one document per (user_id, movie_id) within a relation kind.
type Relation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	MovieID   primitive.ObjectID `bson:"movie_id"`
	CreatedAt time.Time          `bson:"created_at"`
}
