package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoGreenEntry is one campaign submission in the `greenForms` collection.
type GoGreenEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	PhotoURL  string             `bson:"photoUrl" json:"photoUrl"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
