package service

import (
	"context"

	"inkwell/internal/database"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// FollowService owns the follow graph: it is the only component that creates
// or destroys follow edges.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the edge userID -> authorID. Following yourself is an
// invalid operation; following someone twice is a no-op. The same two rules
// are enforced by the storage engine, so a racing duplicate or self-follow
// that slips past these checks is caught and translated, never surfaced as a
// raw fault.
func (s *FollowService) Follow(ctx context.Context, userID, authorID uint) error {
	if userID == authorID {
		return models.NewInvalidOperationError("You cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return err
	}

	if err := s.followRepo.Create(ctx, userID, authorID); err != nil {
		switch {
		case database.IsCheckViolation(err):
			return models.NewInvalidOperationError("You cannot follow yourself")
		case database.IsUniqueViolation(err):
			// Already following; same outcome as the idempotent path.
			return nil
		default:
			return models.NewInternalError(err)
		}
	}
	return nil
}

// Unfollow removes the edge userID -> authorID; removing a missing edge is
// not an error.
func (s *FollowService) Unfollow(ctx context.Context, userID, authorID uint) error {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return err
	}
	return s.followRepo.Delete(ctx, userID, authorID)
}

// IsFollowing reports whether the edge userID -> authorID exists.
func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.followRepo.Exists(ctx, userID, authorID)
}

// FollowByUsername resolves the author by username and follows them.
func (s *FollowService) FollowByUsername(ctx context.Context, userID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.Follow(ctx, userID, author.ID)
}

// UnfollowByUsername resolves the author by username and unfollows them.
func (s *FollowService) UnfollowByUsername(ctx context.Context, userID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.Unfollow(ctx, userID, author.ID)
}

// Followers returns the users following the given author.
func (s *FollowService) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.ListFollowers(ctx, userID)
}

// Following returns the authors the given user follows.
func (s *FollowService) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followRepo.ListFollowing(ctx, userID)
}

// ProfileCounts returns follower/following counts for a profile page.
func (s *FollowService) ProfileCounts(ctx context.Context, userID uint) (followers, following int64, err error) {
	followers, err = s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	following, err = s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}
