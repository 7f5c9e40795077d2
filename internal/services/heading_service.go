package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/repositories"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

type HeadingService interface {
	List(ctx context.Context) ([]*models.PropertyHeading, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.PropertyHeading, error)
	Create(ctx context.Context, h *models.PropertyHeading) error
	Update(ctx context.Context, h *models.PropertyHeading) error
	// Move swaps displayOrder with the neighbouring heading in the
	// given direction; moving past either end is a no-op.
	Move(ctx context.Context, id primitive.ObjectID, dir MoveDirection) error
	ToggleVisible(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type headingService struct {
	repo repositories.HeadingRepository
}

func NewHeadingService(repo repositories.HeadingRepository) HeadingService {
	return &headingService{repo: repo}
}

func (s *headingService) List(ctx context.Context) ([]*models.PropertyHeading, error) {
	headings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if headings == nil {
		headings = []*models.PropertyHeading{}
	}
	return headings, nil
}

func (s *headingService) Get(ctx context.Context, id primitive.ObjectID) (*models.PropertyHeading, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, utils.ErrNotFound
	}
	return h, nil
}

func (s *headingService) Create(ctx context.Context, h *models.PropertyHeading) error {
	if !models.ValidFieldType(h.FieldType) {
		return utils.ErrInvalidStatus
	}
	if h.DisplayOrder == 0 {
		// New headings land at the end of the list.
		existing, err := s.repo.List(ctx)
		if err != nil {
			return err
		}
		maxOrder := 0
		for _, e := range existing {
			if e.DisplayOrder > maxOrder {
				maxOrder = e.DisplayOrder
			}
		}
		h.DisplayOrder = maxOrder + 1
	}
	return s.repo.Create(ctx, h)
}

func (s *headingService) Update(ctx context.Context, h *models.PropertyHeading) error {
	if !models.ValidFieldType(h.FieldType) {
		return utils.ErrInvalidStatus
	}
	return mapNoDocuments(s.repo.Update(ctx, h))
}

func (s *headingService) Move(ctx context.Context, id primitive.ObjectID, dir MoveDirection) error {
	headings, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, h := range headings {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return utils.ErrNotFound
	}

	var other int
	switch dir {
	case MoveUp:
		other = idx - 1
	case MoveDown:
		other = idx + 1
	default:
		return utils.ErrInvalidStatus
	}
	if other < 0 || other >= len(headings) {
		return nil // already at the edge
	}

	a, b := headings[idx], headings[other]
	if err := s.repo.SetDisplayOrder(ctx, a.ID, b.DisplayOrder); err != nil {
		return mapNoDocuments(err)
	}
	return mapNoDocuments(s.repo.SetDisplayOrder(ctx, b.ID, a.DisplayOrder))
}

func (s *headingService) ToggleVisible(ctx context.Context, id primitive.ObjectID) error {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if h == nil {
		return utils.ErrNotFound
	}
	return mapNoDocuments(s.repo.SetVisible(ctx, id, !h.Visible))
}

func (s *headingService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return mapNoDocuments(s.repo.Delete(ctx, id))
}
