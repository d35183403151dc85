package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetUserProfile handles GET /api/users/:username — the profile with
// follower counts and, for an authenticated viewer, whether they follow the
// profile's owner.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	ctx := c.Context()

	user, err := s.userRepo.GetByUsername(ctx, c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}

	followers, following, err := s.followService.ProfileCounts(ctx, user.ID)
	if err != nil {
		return respondError(c, err)
	}

	isFollowing := false
	if viewerID, ok := optionalUserID(c); ok && viewerID != user.ID {
		isFollowing, err = s.followService.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"user":         user,
		"followers":    followers,
		"following":    following,
		"is_following": isFollowing,
	})
}

// GetUserPosts handles GET /api/users/:username/posts?page=N
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	page, err := s.feedService.ListByAuthor(c.Context(), c.Params("username"), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// GetUserFollowers handles GET /api/users/:username/followers
func (s *Server) GetUserFollowers(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}
	followers, err := s.followService.Followers(c.Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"followers": followers})
}

// GetUserFollowing handles GET /api/users/:username/following
func (s *Server) GetUserFollowing(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}
	following, err := s.followService.Following(c.Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": following})
}

// FollowUser handles POST /api/users/:username/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	if err := s.followService.FollowByUsername(c.Context(), currentUserID(c), c.Params("username")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UnfollowUser handles DELETE /api/users/:username/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	if err := s.followService.UnfollowByUsername(c.Context(), currentUserID(c), c.Params("username")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
