package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(noopPostRepo(), noopGroupRepo())
		_, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 1, Text: "   "})
		assertAppCode(t, err, models.CodeValidation)
	})

	t.Run("without group", func(t *testing.T) {
		t.Parallel()
		var created *models.Post
		postRepo := noopPostRepo()
		postRepo.createFn = func(_ context.Context, p *models.Post) error {
			p.ID = 11
			created = p
			return nil
		}
		postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			require.Equal(t, created.ID, id)
			return created, nil
		}
		groupRepo := noopGroupRepo()
		groupRepo.getBySlugFn = func(_ context.Context, slug string) (*models.Group, error) {
			t.Fatalf("group lookup must not happen without a slug, got %q", slug)
			return nil, nil
		}

		svc := NewPostService(postRepo, groupRepo)
		post, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 2, Text: " hello "})
		require.NoError(t, err)
		assert.Equal(t, "hello", post.Text)
		assert.Nil(t, post.GroupID)
	})

	t.Run("with group slug", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		var created *models.Post
		postRepo.createFn = func(_ context.Context, p *models.Post) error {
			p.ID = 12
			created = p
			return nil
		}
		postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) { return created, nil }
		groupRepo := noopGroupRepo()
		groupRepo.getBySlugFn = func(_ context.Context, slug string) (*models.Group, error) {
			return &models.Group{ID: 9, Slug: slug}, nil
		}

		svc := NewPostService(postRepo, groupRepo)
		post, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 2, Text: "hi", GroupSlug: "golang"})
		require.NoError(t, err)
		require.NotNil(t, post.GroupID)
		assert.Equal(t, uint(9), *post.GroupID)
	})

	t.Run("unknown group slug", func(t *testing.T) {
		t.Parallel()
		groupRepo := noopGroupRepo()
		groupRepo.getBySlugFn = func(_ context.Context, slug string) (*models.Group, error) {
			return nil, models.NewNotFoundError("Group", slug)
		}
		svc := NewPostService(noopPostRepo(), groupRepo)
		_, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 2, Text: "hi", GroupSlug: "nope"})
		assertAppCode(t, err, models.CodeNotFound)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	existing := func() *models.Post {
		gid := uint(3)
		return &models.Post{ID: 1, Text: "original", AuthorID: 5, GroupID: &gid}
	}

	t.Run("non-author is forbidden", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) { return existing(), nil }
		postRepo.updateFn = func(_ context.Context, _ *models.Post) error {
			t.Fatal("update must not run for a non-author")
			return nil
		}
		svc := NewPostService(postRepo, noopGroupRepo())
		_, err := svc.UpdatePost(ctx, UpdatePostInput{PostID: 1, UserID: 6, Text: "hijack"})
		assertAppCode(t, err, models.CodeForbidden)
	})

	t.Run("author edits text and clears group", func(t *testing.T) {
		t.Parallel()
		var saved *models.Post
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			if saved != nil {
				return saved, nil
			}
			return existing(), nil
		}
		postRepo.updateFn = func(_ context.Context, p *models.Post) error {
			saved = p
			return nil
		}
		svc := NewPostService(postRepo, noopGroupRepo())
		post, err := svc.UpdatePost(ctx, UpdatePostInput{PostID: 1, UserID: 5, Text: "edited"})
		require.NoError(t, err)
		assert.Equal(t, "edited", post.Text)
		assert.Nil(t, post.GroupID)
	})

	t.Run("empty replacement text", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) { return existing(), nil }
		svc := NewPostService(postRepo, noopGroupRepo())
		_, err := svc.UpdatePost(ctx, UpdatePostInput{PostID: 1, UserID: 5, Text: "  "})
		assertAppCode(t, err, models.CodeValidation)
	})
}

func TestPostService_DeletePost_AuthorOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, AuthorID: 5}, nil
	}
	deleted := false
	postRepo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}
	svc := NewPostService(postRepo, noopGroupRepo())

	err := svc.DeletePost(ctx, 1, 9)
	assertAppCode(t, err, models.CodeForbidden)
	assert.False(t, deleted)

	require.NoError(t, svc.DeletePost(ctx, 1, 5))
	assert.True(t, deleted)
}
