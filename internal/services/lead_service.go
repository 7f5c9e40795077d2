package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/repositories"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type LeadService interface {
	List(ctx context.Context) ([]*models.Lead, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Lead, error)
	Create(ctx context.Context, l *models.Lead) error
	Update(ctx context.Context, l *models.Lead) error
	ChangeStatus(ctx context.Context, id primitive.ObjectID, status models.LeadStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type leadService struct {
	repo repositories.LeadRepository
}

func NewLeadService(repo repositories.LeadRepository) LeadService {
	return &leadService{repo: repo}
}

func (s *leadService) List(ctx context.Context) ([]*models.Lead, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []*models.Lead{}
	}
	return leads, nil
}

func (s *leadService) Get(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, utils.ErrNotFound
	}
	return l, nil
}

func (s *leadService) Create(ctx context.Context, l *models.Lead) error {
	if l.Status != "" && !models.ValidLeadStatus(l.Status) {
		return utils.ErrInvalidStatus
	}
	return s.repo.Create(ctx, l)
}

func (s *leadService) Update(ctx context.Context, l *models.Lead) error {
	if !models.ValidLeadStatus(l.Status) {
		return utils.ErrInvalidStatus
	}
	return mapNoDocuments(s.repo.Update(ctx, l))
}

func (s *leadService) ChangeStatus(ctx context.Context, id primitive.ObjectID, status models.LeadStatus) error {
	if !models.ValidLeadStatus(status) {
		return utils.ErrInvalidStatus
	}
	return mapNoDocuments(s.repo.SetStatus(ctx, id, status))
}

func (s *leadService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return mapNoDocuments(s.repo.Delete(ctx, id))
}
