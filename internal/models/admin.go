package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin represents an administrative user of the dashboard.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash string             `bson:"passwordHash" json:"-"` // never serialize
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
