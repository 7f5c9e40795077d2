package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeTextarea FieldType = "textarea"
)

func ValidFieldType(t FieldType) bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeSelect, FieldTypeBoolean, FieldTypeTextarea:
		return true
	}
	return false
}

// PropertyHeading is a schema-definition record describing one dynamic
// listing attribute shown on property pages.
type PropertyHeading struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	DisplayName  string             `bson:"displayName" json:"displayName"`
	FieldType    FieldType          `bson:"fieldType" json:"fieldType"`
	DisplayOrder int                `bson:"displayOrder" json:"displayOrder"`
	Required     bool               `bson:"required" json:"required"`
	Visible      bool               `bson:"visible" json:"visible"`
	Options      []string           `bson:"options" json:"options"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (h *PropertyHeading) Normalize() {
	if h.Options == nil {
		h.Options = []string{}
	}
}
