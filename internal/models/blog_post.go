package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is one article in the `blogPosts` collection. Slug is
// unique across the collection and derived from Title when absent.
type BlogPost struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Slug            string             `bson:"slug" json:"slug"`
	Content         string             `bson:"content" json:"content"` // rich HTML
	MetaTitle       string             `bson:"metaTitle" json:"metaTitle"`
	MetaDescription string             `bson:"metaDescription" json:"metaDescription"`
	MetaKeywords    string             `bson:"metaKeywords" json:"metaKeywords"`
	Category        string             `bson:"category" json:"category"`
	Images          []string           `bson:"images" json:"images"`
	Published       bool               `bson:"published" json:"published"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (b *BlogPost) Normalize() {
	if b.Images == nil {
		b.Images = []string{}
	}
}
