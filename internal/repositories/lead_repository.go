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

type LeadRepository interface {
	List(ctx context.Context) ([]*models.Lead, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Lead, error)
	Create(ctx context.Context, l *models.Lead) error
	Update(ctx context.Context, l *models.Lead) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.LeadStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type leadRepo struct {
	coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) LeadRepository {
	return &leadRepo{coll: db.Collection(LeadsCollection)}
}

func (r *leadRepo) List(ctx context.Context) ([]*models.Lead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*models.Lead
	for cursor.Next(ctx) {
		var l models.Lead
		if err := cursor.Decode(&l); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}
	return out, cursor.Err()
}

func (r *leadRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
	var l models.Lead
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *leadRepo) Create(ctx context.Context, l *models.Lead) error {
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	if l.Status == "" {
		l.Status = models.LeadStatusNew
	}

	res, err := r.coll.InsertOne(ctx, l)
	if err != nil {
		return err
	}
	l.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *leadRepo) Update(ctx context.Context, l *models.Lead) error {
	l.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"name":         l.Name,
		"email":        l.Email,
		"phone":        l.Phone,
		"propertyName": l.PropertyName,
		"status":       l.Status,
		"updatedAt":    l.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": l.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *leadRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status models.LeadStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *leadRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *leadRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
