package server

import (
	"encoding/json"

	"inkwell/internal/cache"
	"inkwell/internal/middleware"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Index handles GET / — the first page of all posts, served through the page
// cache. A warm entry is returned verbatim, so the index can lag behind new
// posts by up to one TTL window. Only expiry or an explicit admin clear
// refreshes it; post, comment and follow mutations never touch it.
func (s *Server) Index(c *fiber.Ctx) error {
	ctx := c.Context()

	if cached, ok, err := s.pageCache.Get(ctx, cache.IndexPageKey); err == nil && ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(cached)
	} else if err != nil {
		middleware.RedisErrors.WithLabelValues("get").Inc()
		middleware.Logger.WarnContext(c.UserContext(), "page cache read failed", "error", err)
	}

	page, err := s.feedService.ListAll(ctx, 1)
	if err != nil {
		return respondError(c, err)
	}

	body, err := json.Marshal(page)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	if err := s.pageCache.Set(ctx, cache.IndexPageKey, body, s.config.IndexCacheTTL()); err != nil {
		middleware.RedisErrors.WithLabelValues("set").Inc()
		middleware.Logger.WarnContext(c.UserContext(), "page cache write failed", "error", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
