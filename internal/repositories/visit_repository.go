package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The visitor counter is a single upserted document keyed by "site".
const visitCounterID = "site"

type VisitRepository interface {
	Increment(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type visitRepo struct {
	coll *mongo.Collection
}

func NewVisitRepository(db *mongo.Database) VisitRepository {
	return &visitRepo{coll: db.Collection(VisitsCollection)}
}

type visitDoc struct {
	ID    string `bson:"_id"`
	Count int64  `bson:"count"`
}

func (r *visitRepo) Increment(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc visitDoc
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": visitCounterID},
		bson.M{"$inc": bson.M{"count": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Count, nil
}

func (r *visitRepo) Count(ctx context.Context) (int64, error) {
	var doc visitDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": visitCounterID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}
	return doc.Count, nil
}
