package dtos

import (
	"time"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
)

// PropertyRequest is the full editable payload of a listing, shared by
// create and update. Array sections may be omitted; the model defaults
// them to empty slices.
type PropertyRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Heading     string `json:"heading" validate:"max=200"`
	Description string `json:"description"`

	PropertyType  string `json:"propertyType" validate:"required,max=100"`
	Subtype       string `json:"subtype" validate:"max=100"`
	Purpose       string `json:"purpose" validate:"required,max=100"`
	ListingIntent string `json:"listingIntent" validate:"required"`
	PossessStatus string `json:"possessStatus" validate:"omitempty,oneof=sale sold pre-launch under-construction ready-to-move"`

	StartingPrice float64 `json:"startingPrice" validate:"gte=0"`

	Address  string `json:"address" validate:"max=300"`
	Locality string `json:"locality" validate:"max=100"`
	City     string `json:"city" validate:"max=100"`
	State    string `json:"state" validate:"max=100"`
	Pincode  string `json:"pincode" validate:"max=10"`

	TotalFloors    int `json:"totalFloors" validate:"gte=0"`
	TotalTowers    int `json:"totalTowers" validate:"gte=0"`
	TotalWings     int `json:"totalWings" validate:"gte=0"`
	TotalBasements int `json:"totalBasements" validate:"gte=0"`
	PodiumLevels   int `json:"podiumLevels" validate:"gte=0"`

	ReraNumber string     `json:"reraNumber" validate:"max=50"`
	ReraDate   *time.Time `json:"reraDate,omitempty"`

	Bedrooms  int `json:"bedrooms" validate:"gte=0"`
	Bathrooms int `json:"bathrooms" validate:"gte=0"`

	Images         []string `json:"images"`
	VideoLinks     []string `json:"videoLinks"`
	BrochureURL    string   `json:"brochureUrl"`
	VirtualTourURL string   `json:"virtualTourUrl"`

	Amenities    []string             `json:"amenities"`
	Highlights   []string             `json:"highlights"`
	KeyFeatures  []string             `json:"keyFeatures"`
	PaymentPlans []string             `json:"paymentPlans"`
	NearbyPlaces []models.NearbyPlace `json:"nearbyPlaces"`
	UnitTypes    []models.UnitType    `json:"unitTypes"`

	Published   bool   `json:"published"`
	PublishedBy string `json:"publishedBy" validate:"max=100"`
}

func (r PropertyRequest) ToModel() *models.Property {
	p := &models.Property{
		Title:          r.Title,
		Heading:        r.Heading,
		Description:    r.Description,
		PropertyType:   r.PropertyType,
		Subtype:        r.Subtype,
		Purpose:        r.Purpose,
		ListingIntent:  r.ListingIntent,
		PossessStatus:  r.PossessStatus,
		StartingPrice:  r.StartingPrice,
		Address:        r.Address,
		Locality:       r.Locality,
		City:           r.City,
		State:          r.State,
		Pincode:        r.Pincode,
		TotalFloors:    r.TotalFloors,
		TotalTowers:    r.TotalTowers,
		TotalWings:     r.TotalWings,
		TotalBasements: r.TotalBasements,
		PodiumLevels:   r.PodiumLevels,
		ReraNumber:     r.ReraNumber,
		ReraDate:       r.ReraDate,
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		Images:         r.Images,
		VideoLinks:     r.VideoLinks,
		BrochureURL:    r.BrochureURL,
		VirtualTourURL: r.VirtualTourURL,
		Amenities:      r.Amenities,
		Highlights:     r.Highlights,
		KeyFeatures:    r.KeyFeatures,
		PaymentPlans:   r.PaymentPlans,
		NearbyPlaces:   r.NearbyPlaces,
		UnitTypes:      r.UnitTypes,
		Published:      r.Published,
		PublishedBy:    r.PublishedBy,
	}
	p.Normalize()
	return p
}

type SetPublishedRequest struct {
	Published bool `json:"published"`
}

type SetListingIntentRequest struct {
	ListingIntent string `json:"listingIntent" validate:"required"`
}
