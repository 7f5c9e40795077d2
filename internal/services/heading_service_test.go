package services

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

type fakeHeadingRepo struct {
	headings []*models.PropertyHeading
}

func (r *fakeHeadingRepo) List(ctx context.Context) ([]*models.PropertyHeading, error) {
	sorted := append([]*models.PropertyHeading(nil), r.headings...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DisplayOrder < sorted[j].DisplayOrder
	})
	return sorted, nil
}

func (r *fakeHeadingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.PropertyHeading, error) {
	for _, h := range r.headings {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, nil
}

func (r *fakeHeadingRepo) Create(ctx context.Context, h *models.PropertyHeading) error {
	h.ID = primitive.NewObjectID()
	r.headings = append(r.headings, h)
	return nil
}

func (r *fakeHeadingRepo) Update(ctx context.Context, h *models.PropertyHeading) error {
	for i, old := range r.headings {
		if old.ID == h.ID {
			r.headings[i] = h
			return nil
		}
	}
	return nil
}

func (r *fakeHeadingRepo) SetDisplayOrder(ctx context.Context, id primitive.ObjectID, order int) error {
	for _, h := range r.headings {
		if h.ID == id {
			h.DisplayOrder = order
			return nil
		}
	}
	return nil
}

func (r *fakeHeadingRepo) SetVisible(ctx context.Context, id primitive.ObjectID, visible bool) error {
	for _, h := range r.headings {
		if h.ID == id {
			h.Visible = visible
			return nil
		}
	}
	return nil
}

func (r *fakeHeadingRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, h := range r.headings {
		if h.ID == id {
			r.headings = append(r.headings[:i], r.headings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeHeadingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.headings)), nil
}

func seededHeadingService(t *testing.T) (HeadingService, *fakeHeadingRepo) {
	t.Helper()
	repo := &fakeHeadingRepo{}
	svc := NewHeadingService(repo)
	for _, name := range []string{"carpetArea", "facing", "furnishing"} {
		h := &models.PropertyHeading{Name: name, DisplayName: name, FieldType: models.FieldTypeText, Visible: true}
		require.NoError(t, svc.Create(context.Background(), h))
	}
	return svc, repo
}

func TestHeadingCreateAppendsDisplayOrder(t *testing.T) {
	_, repo := seededHeadingService(t)

	require.Equal(t, 1, repo.headings[0].DisplayOrder)
	require.Equal(t, 2, repo.headings[1].DisplayOrder)
	require.Equal(t, 3, repo.headings[2].DisplayOrder)
}

func TestHeadingCreateRejectsUnknownFieldType(t *testing.T) {
	svc := NewHeadingService(&fakeHeadingRepo{})

	h := &models.PropertyHeading{Name: "x", DisplayName: "x", FieldType: models.FieldType("dropdown")}
	require.ErrorIs(t, svc.Create(context.Background(), h), utils.ErrInvalidStatus)
}

func TestHeadingMoveSwapsWithNeighbour(t *testing.T) {
	svc, repo := seededHeadingService(t)
	second := repo.headings[1]

	require.NoError(t, svc.Move(context.Background(), second.ID, MoveUp))

	ordered, _ := repo.List(context.Background())
	require.Equal(t, "facing", ordered[0].Name)
	require.Equal(t, "carpetArea", ordered[1].Name)
	require.Equal(t, "furnishing", ordered[2].Name)
}

func TestHeadingMovePastEdgeIsNoOp(t *testing.T) {
	svc, repo := seededHeadingService(t)
	first, last := repo.headings[0], repo.headings[2]

	require.NoError(t, svc.Move(context.Background(), first.ID, MoveUp))
	require.NoError(t, svc.Move(context.Background(), last.ID, MoveDown))

	ordered, _ := repo.List(context.Background())
	require.Equal(t, "carpetArea", ordered[0].Name)
	require.Equal(t, "furnishing", ordered[2].Name)
}

func TestHeadingMoveUnknownID(t *testing.T) {
	svc, _ := seededHeadingService(t)

	err := svc.Move(context.Background(), primitive.NewObjectID(), MoveDown)
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestHeadingToggleVisible(t *testing.T) {
	svc, repo := seededHeadingService(t)
	h := repo.headings[0]
	require.True(t, h.Visible)

	require.NoError(t, svc.ToggleVisible(context.Background(), h.ID))
	require.False(t, h.Visible)

	require.NoError(t, svc.ToggleVisible(context.Background(), h.ID))
	require.True(t, h.Visible)
}
