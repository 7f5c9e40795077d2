package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BannerStatus string

const (
	BannerStatusActive    BannerStatus = "Active"
	BannerStatusScheduled BannerStatus = "Scheduled"
	BannerStatusExpired   BannerStatus = "Expired"
)

func ValidBannerStatus(s BannerStatus) bool {
	switch s {
	case BannerStatusActive, BannerStatusScheduled, BannerStatusExpired:
		return true
	}
	return false
}

// Banner is one marketing banner in the `banners` collection.
type Banner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Position    int                `bson:"position" json:"position"`
	Status      BannerStatus       `bson:"status" json:"status"`
	StartDate   *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
