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

type GreenRepository interface {
	List(ctx context.Context) ([]*models.GoGreenEntry, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.GoGreenEntry, error)
	Create(ctx context.Context, e *models.GoGreenEntry) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type greenRepo struct {
	coll *mongo.Collection
}

func NewGreenRepository(db *mongo.Database) GreenRepository {
	return &greenRepo{coll: db.Collection(GreenFormsCollection)}
}

func (r *greenRepo) List(ctx context.Context) ([]*models.GoGreenEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*models.GoGreenEntry
	for cursor.Next(ctx) {
		var e models.GoGreenEntry
		if err := cursor.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, cursor.Err()
}

func (r *greenRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.GoGreenEntry, error) {
	var e models.GoGreenEntry
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *greenRepo) Create(ctx context.Context, e *models.GoGreenEntry) error {
	e.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		return err
	}
	e.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *greenRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *greenRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
