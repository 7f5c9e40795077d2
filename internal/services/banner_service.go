package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/repositories"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type BannerService interface {
	List(ctx context.Context) ([]*models.Banner, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Banner, error)
	Create(ctx context.Context, b *models.Banner) error
	Update(ctx context.Context, b *models.Banner) error
	ChangeStatus(ctx context.Context, id primitive.ObjectID, status models.BannerStatus) error
	// Reorder swaps the positions of two banners.
	Reorder(ctx context.Context, a, b primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type bannerService struct {
	repo repositories.BannerRepository
}

func NewBannerService(repo repositories.BannerRepository) BannerService {
	return &bannerService{repo: repo}
}

func (s *bannerService) List(ctx context.Context) ([]*models.Banner, error) {
	banners, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if banners == nil {
		banners = []*models.Banner{}
	}
	return banners, nil
}

func (s *bannerService) Get(ctx context.Context, id primitive.ObjectID) (*models.Banner, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.ErrNotFound
	}
	return b, nil
}

func (s *bannerService) Create(ctx context.Context, b *models.Banner) error {
	if b.Status != "" && !models.ValidBannerStatus(b.Status) {
		return utils.ErrInvalidStatus
	}
	if b.Position == 0 {
		// New banners land at the end of the rotation.
		existing, err := s.repo.List(ctx)
		if err != nil {
			return err
		}
		maxPos := 0
		for _, e := range existing {
			if e.Position > maxPos {
				maxPos = e.Position
			}
		}
		b.Position = maxPos + 1
	}
	return s.repo.Create(ctx, b)
}

func (s *bannerService) Update(ctx context.Context, b *models.Banner) error {
	if !models.ValidBannerStatus(b.Status) {
		return utils.ErrInvalidStatus
	}
	return mapNoDocuments(s.repo.Update(ctx, b))
}

func (s *bannerService) ChangeStatus(ctx context.Context, id primitive.ObjectID, status models.BannerStatus) error {
	if !models.ValidBannerStatus(status) {
		return utils.ErrInvalidStatus
	}
	return mapNoDocuments(s.repo.SetStatus(ctx, id, status))
}

func (s *bannerService) Reorder(ctx context.Context, a, b primitive.ObjectID) error {
	first, err := s.repo.GetByID(ctx, a)
	if err != nil {
		return err
	}
	second, err := s.repo.GetByID(ctx, b)
	if err != nil {
		return err
	}
	if first == nil || second == nil {
		return utils.ErrNotFound
	}

	if err := s.repo.SetPosition(ctx, first.ID, second.Position); err != nil {
		return mapNoDocuments(err)
	}
	return mapNoDocuments(s.repo.SetPosition(ctx, second.ID, first.Position))
}

func (s *bannerService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return mapNoDocuments(s.repo.Delete(ctx, id))
}
