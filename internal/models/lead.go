package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "New"
	LeadStatusContacted   LeadStatus = "Contacted"
	LeadStatusQualified   LeadStatus = "Qualified"
	LeadStatusUnqualified LeadStatus = "Unqualified"
)

func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusUnqualified:
		return true
	}
	return false
}

// Lead is an enquiry in the `leads` collection. PropertyName is a
// denormalized display string, not a foreign key.
type Lead struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	PropertyName string             `bson:"propertyName" json:"propertyName"`
	Status       LeadStatus         `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
