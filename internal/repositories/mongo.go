package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names (string-keyed, schema-less on the store side;
// typed documents on ours).
const (
	PropertiesCollection    = "properties"
	LeadsCollection         = "leads"
	BannersCollection       = "banners"
	HeadingsCollection      = "property-headings"
	BlogPostsCollection     = "blogPosts"
	GreenFormsCollection    = "greenForms"
	AdminsCollection        = "admins"
	RefreshTokensCollection = "refresh_tokens"
	VisitsCollection        = "visits"
)

const connectTimeout = 10 * time.Second

// Connect dials the document store and verifies the connection with
// a ping before handing the client back.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	return client, nil
}
