package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
)

type TokenRepository interface {
	Store(ctx context.Context, t *models.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteAllByAdminID(ctx context.Context, adminID primitive.ObjectID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type tokenRepo struct {
	coll *mongo.Collection
}

func NewTokenRepository(db *mongo.Database) TokenRepository {
	return &tokenRepo{coll: db.Collection(RefreshTokensCollection)}
}

func (r *tokenRepo) Store(ctx context.Context, t *models.RefreshToken) error {
	t.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return err
	}
	t.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *tokenRepo) GetByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var t models.RefreshToken
	err := r.coll.FindOne(ctx, bson.M{"token": token}).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tokenRepo) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"token": token})
	return err
}

func (r *tokenRepo) DeleteAllByAdminID(ctx context.Context, adminID primitive.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"adminId": adminID})
	return err
}

func (r *tokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lt": time.Now().UTC()}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
