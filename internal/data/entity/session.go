package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is one login. Token is an opaque UUID handed to the client as a
// bearer credential; the session is valid until ExpiresAt or logout.
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Token     string             `bson:"token"`
	ExpiresAt time.Time          `bson:"expires_at"`
	CreatedAt time.Time          `bson:"created_at"`
}
