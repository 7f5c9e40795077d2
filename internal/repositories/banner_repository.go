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

type BannerRepository interface {
	List(ctx context.Context) ([]*models.Banner, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Banner, error)
	Create(ctx context.Context, b *models.Banner) error
	Update(ctx context.Context, b *models.Banner) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.BannerStatus) error
	SetPosition(ctx context.Context, id primitive.ObjectID, position int) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type bannerRepo struct {
	coll *mongo.Collection
}

func NewBannerRepository(db *mongo.Database) BannerRepository {
	return &bannerRepo{coll: db.Collection(BannersCollection)}
}

func (r *bannerRepo) List(ctx context.Context) ([]*models.Banner, error) {
	// Banners render in slot order, not recency.
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*models.Banner
	for cursor.Next(ctx) {
		var b models.Banner
		if err := cursor.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, cursor.Err()
}

func (r *bannerRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Banner, error) {
	var b models.Banner
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *bannerRepo) Create(ctx context.Context, b *models.Banner) error {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.Status == "" {
		b.Status = models.BannerStatusScheduled
	}

	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return err
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *bannerRepo) Update(ctx context.Context, b *models.Banner) error {
	b.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"title":       b.Title,
		"description": b.Description,
		"imageUrl":    b.ImageURL,
		"status":      b.Status,
		"startDate":   b.StartDate,
		"endDate":     b.EndDate,
		"updatedAt":   b.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": b.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *bannerRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status models.BannerStatus) error {
	return r.setFields(ctx, id, bson.M{"status": status})
}

func (r *bannerRepo) SetPosition(ctx context.Context, id primitive.ObjectID, position int) error {
	return r.setFields(ctx, id, bson.M{"position": position})
}

func (r *bannerRepo) setFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
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

func (r *bannerRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *bannerRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
