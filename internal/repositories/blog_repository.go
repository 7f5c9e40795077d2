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

type BlogRepository interface {
	List(ctx context.Context) ([]*models.BlogPost, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	// CountBySlug counts posts carrying the slug, excluding the given
	// id (pass primitive.NilObjectID for creation checks).
	CountBySlug(ctx context.Context, slug string, excludeID primitive.ObjectID) (int64, error)
	Create(ctx context.Context, b *models.BlogPost) error
	Update(ctx context.Context, b *models.BlogPost) error
	SetPublished(ctx context.Context, id primitive.ObjectID, published bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type blogRepo struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) BlogRepository {
	return &blogRepo{coll: db.Collection(BlogPostsCollection)}
}

func (r *blogRepo) List(ctx context.Context) ([]*models.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*models.BlogPost
	for cursor.Next(ctx) {
		var b models.BlogPost
		if err := cursor.Decode(&b); err != nil {
			return nil, err
		}
		b.Normalize()
		out = append(out, &b)
	}
	return out, cursor.Err()
}

func (r *blogRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *blogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *blogRepo) findOne(ctx context.Context, filter bson.M) (*models.BlogPost, error) {
	var b models.BlogPost
	err := r.coll.FindOne(ctx, filter).Decode(&b)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	b.Normalize()
	return &b, nil
}

func (r *blogRepo) CountBySlug(ctx context.Context, slug string, excludeID primitive.ObjectID) (int64, error) {
	filter := bson.M{"slug": slug}
	if excludeID != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	return r.coll.CountDocuments(ctx, filter)
}

func (r *blogRepo) Create(ctx context.Context, b *models.BlogPost) error {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	b.Normalize()

	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return err
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *blogRepo) Update(ctx context.Context, b *models.BlogPost) error {
	b.UpdatedAt = time.Now().UTC()
	b.Normalize()
	update := bson.M{"$set": bson.M{
		"title":           b.Title,
		"slug":            b.Slug,
		"content":         b.Content,
		"metaTitle":       b.MetaTitle,
		"metaDescription": b.MetaDescription,
		"metaKeywords":    b.MetaKeywords,
		"category":        b.Category,
		"images":          b.Images,
		"published":       b.Published,
		"updatedAt":       b.UpdatedAt,
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

func (r *blogRepo) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) error {
	update := bson.M{"$set": bson.M{"published": published, "updatedAt": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *blogRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *blogRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
