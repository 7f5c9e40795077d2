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

type HeadingRepository interface {
	List(ctx context.Context) ([]*models.PropertyHeading, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.PropertyHeading, error)
	Create(ctx context.Context, h *models.PropertyHeading) error
	Update(ctx context.Context, h *models.PropertyHeading) error
	SetDisplayOrder(ctx context.Context, id primitive.ObjectID, order int) error
	SetVisible(ctx context.Context, id primitive.ObjectID, visible bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type headingRepo struct {
	coll *mongo.Collection
}

func NewHeadingRepository(db *mongo.Database) HeadingRepository {
	return &headingRepo{coll: db.Collection(HeadingsCollection)}
}

func (r *headingRepo) List(ctx context.Context) ([]*models.PropertyHeading, error) {
	opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*models.PropertyHeading
	for cursor.Next(ctx) {
		var h models.PropertyHeading
		if err := cursor.Decode(&h); err != nil {
			return nil, err
		}
		h.Normalize()
		out = append(out, &h)
	}
	return out, cursor.Err()
}

func (r *headingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.PropertyHeading, error) {
	var h models.PropertyHeading
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&h)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	h.Normalize()
	return &h, nil
}

func (r *headingRepo) Create(ctx context.Context, h *models.PropertyHeading) error {
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now
	h.Normalize()

	res, err := r.coll.InsertOne(ctx, h)
	if err != nil {
		return err
	}
	h.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *headingRepo) Update(ctx context.Context, h *models.PropertyHeading) error {
	h.UpdatedAt = time.Now().UTC()
	h.Normalize()
	update := bson.M{"$set": bson.M{
		"name":        h.Name,
		"displayName": h.DisplayName,
		"fieldType":   h.FieldType,
		"required":    h.Required,
		"visible":     h.Visible,
		"options":     h.Options,
		"updatedAt":   h.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": h.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *headingRepo) SetDisplayOrder(ctx context.Context, id primitive.ObjectID, order int) error {
	return r.setFields(ctx, id, bson.M{"displayOrder": order})
}

func (r *headingRepo) SetVisible(ctx context.Context, id primitive.ObjectID, visible bool) error {
	return r.setFields(ctx, id, bson.M{"visible": visible})
}

func (r *headingRepo) setFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
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

func (r *headingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *headingRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
