package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed?page=N — posts from authors the current user
// follows, newest first. Following no one yields an empty page.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	page, err := s.feedService.ListFeedFor(c.Context(), currentUserID(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}
