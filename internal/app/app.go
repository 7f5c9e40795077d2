package app

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/config"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/repositories"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

const (
	maxRetries     = 5
	initialBackoff = 500 * time.Millisecond
)

// App owns the database client and the repository set. Services and
// controllers are wired on top of it in main.
type App struct {
	Config *config.Config
	Client *mongo.Client
	DB     *mongo.Database

	Properties repositories.PropertyRepository
	Leads      repositories.LeadRepository
	Banners    repositories.BannerRepository
	Headings   repositories.HeadingRepository
	Blogs      repositories.BlogRepository
	Green      repositories.GreenRepository
	Admins     repositories.AdminRepository
	Tokens     repositories.TokenRepository
	Visits     repositories.VisitRepository
}

func NewApp(cfg *config.Config) (*App, error) {
	var (
		client  *mongo.Client
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		client, err = repositories.Connect(context.Background(), cfg.MongoURI)
		if err == nil {
			utils.Logger.Infof("Successfully connected to database on attempt %d", i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed to connect to database on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
		}

		time.Sleep(backoff)
		backoff *= 2
	}

	db := client.Database(cfg.MongoDatabase)

	a := &App{
		Config: cfg,
		Client: client,
		DB:     db,

		Properties: repositories.NewPropertyRepository(db),
		Leads:      repositories.NewLeadRepository(db),
		Banners:    repositories.NewBannerRepository(db),
		Headings:   repositories.NewHeadingRepository(db),
		Blogs:      repositories.NewBlogRepository(db),
		Green:      repositories.NewGreenRepository(db),
		Admins:     repositories.NewAdminRepository(db),
		Tokens:     repositories.NewTokenRepository(db),
		Visits:     repositories.NewVisitRepository(db),
	}

	if err := a.seedAdmin(context.Background()); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	return a, nil
}

// Ping verifies database connectivity for the health endpoint.
func (a *App) Ping(ctx context.Context) error {
	return a.Client.Ping(ctx, readpref.Primary())
}

func (a *App) Close() {
	if a.Client != nil {
		if err := a.Client.Disconnect(context.Background()); err != nil {
			utils.Logger.WithError(err).Warn("Error disconnecting from database")
			return
		}
		utils.Logger.Info("Database connection closed.")
	}
}
