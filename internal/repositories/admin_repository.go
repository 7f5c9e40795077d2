package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
)

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	Create(ctx context.Context, a *models.Admin) error
	Count(ctx context.Context) (int64, error)
}

type adminRepo struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) AdminRepository {
	return &adminRepo{coll: db.Collection(AdminsCollection)}
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var a models.Admin
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) Create(ctx context.Context, a *models.Admin) error {
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *adminRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
