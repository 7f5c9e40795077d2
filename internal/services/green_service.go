package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/repositories"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type GreenService interface {
	List(ctx context.Context) ([]*models.GoGreenEntry, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.GoGreenEntry, error)
	Create(ctx context.Context, e *models.GoGreenEntry) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type greenService struct {
	repo repositories.GreenRepository
}

func NewGreenService(repo repositories.GreenRepository) GreenService {
	return &greenService{repo: repo}
}

func (s *greenService) List(ctx context.Context) ([]*models.GoGreenEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.GoGreenEntry{}
	}
	return entries, nil
}

func (s *greenService) Get(ctx context.Context, id primitive.ObjectID) (*models.GoGreenEntry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, utils.ErrNotFound
	}
	return e, nil
}

func (s *greenService) Create(ctx context.Context, e *models.GoGreenEntry) error {
	return s.repo.Create(ctx, e)
}

func (s *greenService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return mapNoDocuments(s.repo.Delete(ctx, id))
}
