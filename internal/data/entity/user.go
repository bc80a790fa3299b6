package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password"`
	Role         UserRole           `bson:"role"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// Identity is the session-resolved caller: who is making the request and with
// which role. It is what the auth middleware attaches to the request context.
type Identity struct {
	ID       primitive.ObjectID `json:"id"`
	Username string             `json:"username"`
	Role     UserRole           `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
