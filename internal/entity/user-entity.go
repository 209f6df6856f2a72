package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserEntity is the users collection document. The notification pipeline only
// reads it for contact resolution, it never mutates users.
type UserEntity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"password" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updated_at"`
}
