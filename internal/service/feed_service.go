// Package service implements business logic on top of the repositories.
package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// FeedService assembles the paginated post listings for the index, group,
// profile and follow-feed views. Every listing is ordered newest first with
// posts pre-loaded with their author and group.
type FeedService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	pageSize  int
}

// NewFeedService returns a new FeedService with the configured page size.
func NewFeedService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	pageSize int,
) *FeedService {
	return &FeedService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		pageSize:  pageSize,
	}
}

// PageSize returns the configured page size.
func (s *FeedService) PageSize() int {
	return s.pageSize
}

// ListAll returns one page of all posts, unfiltered.
func (s *FeedService) ListAll(ctx context.Context, page int) (*models.Page, error) {
	return s.listPage(ctx, page, func(p, size int) ([]models.Post, int64, error) {
		return s.postRepo.ListAll(ctx, p, size, repository.PostOrderNewestFirst)
	})
}

// ListByGroup returns one page of the group's posts, or NOT_FOUND when no
// group has the slug.
func (s *FeedService) ListByGroup(ctx context.Context, slug string, page int) (*models.Page, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.listPage(ctx, page, func(p, size int) ([]models.Post, int64, error) {
		return s.postRepo.ListByGroupID(ctx, group.ID, p, size, repository.PostOrderNewestFirst)
	})
}

// ListByAuthor returns one page of the author's posts, or NOT_FOUND when no
// user has the username.
func (s *FeedService) ListByAuthor(ctx context.Context, username string, page int) (*models.Page, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.listPage(ctx, page, func(p, size int) ([]models.Post, int64, error) {
		return s.postRepo.ListByAuthorID(ctx, user.ID, p, size, repository.PostOrderNewestFirst)
	})
}

// ListFeedFor returns one page of posts whose authors userID follows. A user
// who follows no one gets an empty page.
func (s *FeedService) ListFeedFor(ctx context.Context, userID uint, page int) (*models.Page, error) {
	return s.listPage(ctx, page, func(p, size int) ([]models.Post, int64, error) {
		return s.postRepo.ListFeed(ctx, userID, p, size, repository.PostOrderNewestFirst)
	})
}

func (s *FeedService) listPage(_ context.Context, page int, fetch func(page, size int) ([]models.Post, int64, error)) (*models.Page, error) {
	if page < 1 {
		page = 1
	}
	posts, total, err := fetch(page, s.pageSize)
	if err != nil {
		return nil, err
	}
	return models.NewPage(posts, page, s.pageSize, total), nil
}
