package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/repositories"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/richtext"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type BlogService interface {
	List(ctx context.Context) ([]*models.BlogPost, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Create(ctx context.Context, b *models.BlogPost) error
	Update(ctx context.Context, b *models.BlogPost) error
	SetPublished(ctx context.Context, id primitive.ObjectID, published bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type blogService struct {
	repo repositories.BlogRepository
}

func NewBlogService(repo repositories.BlogRepository) BlogService {
	return &blogService{repo: repo}
}

func (s *blogService) List(ctx context.Context) ([]*models.BlogPost, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.BlogPost{}
	}
	return posts, nil
}

func (s *blogService) Get(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.ErrNotFound
	}
	return b, nil
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	b, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.ErrNotFound
	}
	return b, nil
}

func (s *blogService) Create(ctx context.Context, b *models.BlogPost) error {
	if err := s.prepare(ctx, b, primitive.NilObjectID); err != nil {
		return err
	}
	return s.repo.Create(ctx, b)
}

func (s *blogService) Update(ctx context.Context, b *models.BlogPost) error {
	if err := s.prepare(ctx, b, b.ID); err != nil {
		return err
	}
	return mapNoDocuments(s.repo.Update(ctx, b))
}

// prepare derives the slug when absent, enforces slug uniqueness and
// re-serializes the editor HTML before any write.
func (s *blogService) prepare(ctx context.Context, b *models.BlogPost, excludeID primitive.ObjectID) error {
	if strings.TrimSpace(b.Slug) == "" {
		b.Slug = utils.Slugify(b.Title)
	} else {
		b.Slug = utils.Slugify(b.Slug)
	}

	count, err := s.repo.CountBySlug(ctx, b.Slug, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return utils.ErrSlugExists
	}

	if b.Content != "" {
		clean, err := richtext.Sanitize(b.Content)
		if err != nil {
			// Malformed markup is kept as-is rather than rejected;
			// the parser error is only logged.
			utils.Logger.WithError(err).Warn("Failed to sanitize blog content")
		} else {
			b.Content = clean
		}
	}
	return nil
}

func (s *blogService) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) error {
	return mapNoDocuments(s.repo.SetPublished(ctx, id, published))
}

func (s *blogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return mapNoDocuments(s.repo.Delete(ctx, id))
}
