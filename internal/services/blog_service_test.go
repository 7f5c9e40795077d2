package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/models"
	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

// fakeBlogRepo is an in-memory BlogRepository.
type fakeBlogRepo struct {
	posts []*models.BlogPost
}

func (r *fakeBlogRepo) List(ctx context.Context) ([]*models.BlogPost, error) {
	return r.posts, nil
}

func (r *fakeBlogRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	for _, b := range r.posts {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBlogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	for _, b := range r.posts {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBlogRepo) CountBySlug(ctx context.Context, slug string, excludeID primitive.ObjectID) (int64, error) {
	var n int64
	for _, b := range r.posts {
		if b.Slug == slug && b.ID != excludeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBlogRepo) Create(ctx context.Context, b *models.BlogPost) error {
	b.ID = primitive.NewObjectID()
	r.posts = append(r.posts, b)
	return nil
}

func (r *fakeBlogRepo) Update(ctx context.Context, b *models.BlogPost) error {
	for i, old := range r.posts {
		if old.ID == b.ID {
			r.posts[i] = b
			return nil
		}
	}
	return nil
}

func (r *fakeBlogRepo) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) error {
	for _, b := range r.posts {
		if b.ID == id {
			b.Published = published
			return nil
		}
	}
	return nil
}

func (r *fakeBlogRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, b := range r.posts {
		if b.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeBlogRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}

func TestBlogCreateDerivesSlugFromTitle(t *testing.T) {
	repo := &fakeBlogRepo{}
	svc := NewBlogService(repo)

	post := &models.BlogPost{Title: "Top 10 Localities in Pune"}
	require.NoError(t, svc.Create(context.Background(), post))

	require.Equal(t, "top-10-localities-in-pune", post.Slug)
}

func TestBlogCreateNormalizesExplicitSlug(t *testing.T) {
	repo := &fakeBlogRepo{}
	svc := NewBlogService(repo)

	post := &models.BlogPost{Title: "Anything", Slug: "My Custom Slug!"}
	require.NoError(t, svc.Create(context.Background(), post))

	require.Equal(t, "my-custom-slug", post.Slug)
}

func TestBlogCreateRejectsDuplicateSlug(t *testing.T) {
	repo := &fakeBlogRepo{}
	svc := NewBlogService(repo)

	first := &models.BlogPost{Title: "Market Update"}
	require.NoError(t, svc.Create(context.Background(), first))

	second := &models.BlogPost{Title: "Market Update"}
	err := svc.Create(context.Background(), second)
	require.ErrorIs(t, err, utils.ErrSlugExists)
	require.Len(t, repo.posts, 1)
}

func TestBlogUpdateKeepingOwnSlugIsNotAConflict(t *testing.T) {
	repo := &fakeBlogRepo{}
	svc := NewBlogService(repo)

	post := &models.BlogPost{Title: "Market Update"}
	require.NoError(t, svc.Create(context.Background(), post))

	post.Content = "<p>revised</p>"
	require.NoError(t, svc.Update(context.Background(), post))
	require.Equal(t, "market-update", post.Slug)
}

func TestBlogCreateSanitizesContent(t *testing.T) {
	repo := &fakeBlogRepo{}
	svc := NewBlogService(repo)

	post := &models.BlogPost{
		Title:   "Safe Post",
		Content: `<p onclick="x()">hello</p><script>bad()</script>`,
	}
	require.NoError(t, svc.Create(context.Background(), post))

	require.Equal(t, `<p>hello</p>`, post.Content)
}

func TestBlogGetBySlug(t *testing.T) {
	repo := &fakeBlogRepo{}
	svc := NewBlogService(repo)

	post := &models.BlogPost{Title: "Market Update"}
	require.NoError(t, svc.Create(context.Background(), post))

	got, err := svc.GetBySlug(context.Background(), "market-update")
	require.NoError(t, err)
	require.Equal(t, post.ID, got.ID)

	_, err = svc.GetBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestBlogGetMissingIsNotFound(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepo{})

	_, err := svc.Get(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, utils.ErrNotFound)
}
