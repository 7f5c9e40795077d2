package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing intents (marketing category of a listing).
const (
	IntentSell       = "sell"
	IntentRent       = "rent"
	IntentLease      = "lease"
	IntentNewProject = "new project"
)

// Possession statuses (construction / availability state).
const (
	PossessSale              = "sale"
	PossessSold              = "sold"
	PossessPreLaunch         = "pre-launch"
	PossessUnderConstruction = "under-construction"
	PossessReadyToMove       = "ready-to-move"
)

func ValidListingIntent(s string) bool {
	switch s {
	case IntentSell, IntentRent, IntentLease, IntentNewProject:
		return true
	}
	return false
}

// NearbyPlace is a point of interest near the property.
type NearbyPlace struct {
	Name     string `bson:"name" json:"name"`
	Distance string `bson:"distance" json:"distance"`
}

// UnitType is one sellable configuration within a project.
type UnitType struct {
	Type           string  `bson:"type" json:"type"`
	Bedrooms       int     `bson:"bedrooms" json:"bedrooms"`
	Bathrooms      int     `bson:"bathrooms" json:"bathrooms"`
	Size           string  `bson:"size" json:"size"`
	Price          float64 `bson:"price" json:"price"`
	AdditionalInfo string  `bson:"additionalInfo" json:"additionalInfo"`
}

// Property is one listing document in the `properties` collection.
type Property struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Heading     string             `bson:"heading" json:"heading"`
	Description string             `bson:"description" json:"description"`

	// Classification
	PropertyType  string `bson:"propertyType" json:"propertyType"`
	Subtype       string `bson:"subtype" json:"subtype"`
	Purpose       string `bson:"purpose" json:"purpose"`
	ListingIntent string `bson:"listingIntent" json:"listingIntent"`
	PossessStatus string `bson:"possessStatus" json:"possessStatus"`

	StartingPrice float64 `bson:"startingPrice" json:"startingPrice"`

	// Address
	Address  string `bson:"address" json:"address"`
	Locality string `bson:"locality" json:"locality"`
	City     string `bson:"city" json:"city"`
	State    string `bson:"state" json:"state"`
	Pincode  string `bson:"pincode" json:"pincode"`

	// Building metrics
	TotalFloors    int `bson:"totalFloors" json:"totalFloors"`
	TotalTowers    int `bson:"totalTowers" json:"totalTowers"`
	TotalWings     int `bson:"totalWings" json:"totalWings"`
	TotalBasements int `bson:"totalBasements" json:"totalBasements"`
	PodiumLevels   int `bson:"podiumLevels" json:"podiumLevels"`

	// RERA legal fields
	ReraNumber string     `bson:"reraNumber" json:"reraNumber"`
	ReraDate   *time.Time `bson:"reraDate,omitempty" json:"reraDate,omitempty"`

	Bedrooms  int `bson:"bedrooms" json:"bedrooms"`
	Bathrooms int `bson:"bathrooms" json:"bathrooms"`

	// Media
	Images         []string `bson:"images" json:"images"`
	VideoLinks     []string `bson:"videoLinks" json:"videoLinks"`
	BrochureURL    string   `bson:"brochureUrl" json:"brochureUrl"`
	VirtualTourURL string   `bson:"virtualTourUrl" json:"virtualTourUrl"`

	// Embedded sub-collections
	Amenities    []string      `bson:"amenities" json:"amenities"`
	Highlights   []string      `bson:"highlights" json:"highlights"`
	KeyFeatures  []string      `bson:"keyFeatures" json:"keyFeatures"`
	PaymentPlans []string      `bson:"paymentPlans" json:"paymentPlans"`
	NearbyPlaces []NearbyPlace `bson:"nearbyPlaces" json:"nearbyPlaces"`
	UnitTypes    []UnitType    `bson:"unitTypes" json:"unitTypes"`

	// Publication
	Published   bool   `bson:"published" json:"published"`
	PublishedBy string `bson:"publishedBy" json:"publishedBy"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Normalize defaults every array sub-field to an empty slice so
// documents never carry absent arrays.
func (p *Property) Normalize() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.VideoLinks == nil {
		p.VideoLinks = []string{}
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	if p.Highlights == nil {
		p.Highlights = []string{}
	}
	if p.KeyFeatures == nil {
		p.KeyFeatures = []string{}
	}
	if p.PaymentPlans == nil {
		p.PaymentPlans = []string{}
	}
	if p.NearbyPlaces == nil {
		p.NearbyPlaces = []NearbyPlace{}
	}
	if p.UnitTypes == nil {
		p.UnitTypes = []UnitType{}
	}
}
