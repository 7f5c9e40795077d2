package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/repositories"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type PropertyService interface {
	// List fetches the whole collection and applies the filter
	// in memory; there is no pagination.
	List(ctx context.Context, filter PropertyFilter) ([]*models.Property, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	Create(ctx context.Context, p *models.Property) error
	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	SetPublished(ctx context.Context, id primitive.ObjectID, published bool, publishedBy string) error
	SetListingIntent(ctx context.Context, id primitive.ObjectID, intent string) error
}

type propertyService struct {
	repo repositories.PropertyRepository
}

func NewPropertyService(repo repositories.PropertyRepository) PropertyService {
	return &propertyService{repo: repo}
}

func (s *propertyService) List(ctx context.Context, filter PropertyFilter) ([]*models.Property, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if filter.IsZero() {
		if all == nil {
			all = []*models.Property{}
		}
		return all, nil
	}
	return FilterProperties(all, filter), nil
}

func (s *propertyService) Get(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.ErrNotFound
	}
	return p, nil
}

func (s *propertyService) Create(ctx context.Context, p *models.Property) error {
	if p.ListingIntent != "" && !models.ValidListingIntent(p.ListingIntent) {
		return utils.ErrInvalidStatus
	}
	return s.repo.Create(ctx, p)
}

func (s *propertyService) Update(ctx context.Context, p *models.Property) error {
	if p.ListingIntent != "" && !models.ValidListingIntent(p.ListingIntent) {
		return utils.ErrInvalidStatus
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return mapNoDocuments(err)
	}
	return nil
}

func (s *propertyService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return mapNoDocuments(s.repo.Delete(ctx, id))
}

func (s *propertyService) SetPublished(ctx context.Context, id primitive.ObjectID, published bool, publishedBy string) error {
	return mapNoDocuments(s.repo.SetPublished(ctx, id, published, publishedBy))
}

func (s *propertyService) SetListingIntent(ctx context.Context, id primitive.ObjectID, intent string) error {
	if !models.ValidListingIntent(intent) {
		return utils.ErrInvalidStatus
	}
	return mapNoDocuments(s.repo.SetListingIntent(ctx, id, intent))
}
