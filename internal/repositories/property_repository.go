package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	List(ctx context.Context) ([]*models.Property, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	Create(ctx context.Context, p *models.Property) error
	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	SetPublished(ctx context.Context, id primitive.ObjectID, published bool, publishedBy string) error
	SetListingIntent(ctx context.Context, id primitive.ObjectID, intent string) error
	Count(ctx context.Context) (int64, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	coll *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) PropertyRepository {
	return &propertyRepo{coll: db.Collection(PropertiesCollection)}
}

func (r *propertyRepo) List(ctx context.Context) ([]*models.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*models.Property
	for cursor.Next(ctx) {
		var p models.Property
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		p.Normalize()
		out = append(out, &p)
	}
	return out, cursor.Err()
}

func (r *propertyRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	var p models.Property
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	p.Normalize()
	return &p, nil
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Normalize()

	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces every editable field; createdAt is never touched.
// Last write wins at this granularity.
func (r *propertyRepo) Update(ctx context.Context, p *models.Property) error {
	p.UpdatedAt = time.Now().UTC()
	p.Normalize()

	update := bson.M{"$set": bson.M{
		"title":          p.Title,
		"heading":        p.Heading,
		"description":    p.Description,
		"propertyType":   p.PropertyType,
		"subtype":        p.Subtype,
		"purpose":        p.Purpose,
		"listingIntent":  p.ListingIntent,
		"possessStatus":  p.PossessStatus,
		"startingPrice":  p.StartingPrice,
		"address":        p.Address,
		"locality":       p.Locality,
		"city":           p.City,
		"state":          p.State,
		"pincode":        p.Pincode,
		"totalFloors":    p.TotalFloors,
		"totalTowers":    p.TotalTowers,
		"totalWings":     p.TotalWings,
		"totalBasements": p.TotalBasements,
		"podiumLevels":   p.PodiumLevels,
		"reraNumber":     p.ReraNumber,
		"reraDate":       p.ReraDate,
		"bedrooms":       p.Bedrooms,
		"bathrooms":      p.Bathrooms,
		"images":         p.Images,
		"videoLinks":     p.VideoLinks,
		"brochureUrl":    p.BrochureURL,
		"virtualTourUrl": p.VirtualTourURL,
		"amenities":      p.Amenities,
		"highlights":     p.Highlights,
		"keyFeatures":    p.KeyFeatures,
		"paymentPlans":   p.PaymentPlans,
		"nearbyPlaces":   p.NearbyPlaces,
		"unitTypes":      p.UnitTypes,
		"published":      p.Published,
		"publishedBy":    p.PublishedBy,
		"updatedAt":      p.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete is a hard delete. Blob objects and leads referencing the
// property are left in place (no cascade).
func (r *propertyRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *propertyRepo) SetPublished(ctx context.Context, id primitive.ObjectID, published bool, publishedBy string) error {
	return r.setFields(ctx, id, bson.M{"published": published, "publishedBy": publishedBy})
}

func (r *propertyRepo) SetListingIntent(ctx context.Context, id primitive.ObjectID, intent string) error {
	return r.setFields(ctx, id, bson.M{"listingIntent": intent})
}

func (r *propertyRepo) setFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updatedAt"] = time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *propertyRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
