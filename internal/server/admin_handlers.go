package server

import (
	"inkwell/internal/cache"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ClearIndexCache handles POST /api/admin/cache/clear — the explicit
// invalidation path for the index page cache. The next index request
// recomputes and re-caches the page.
func (s *Server) ClearIndexCache(c *fiber.Ctx) error {
	if err := s.pageCache.Clear(c.Context(), cache.IndexPageKey); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"status": "cleared"})
}
