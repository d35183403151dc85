package server

import (
	"testing"

	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer wires a Server against a fresh in-memory sqlite database and
// an in-process page cache. Prometheus middleware is left out so parallel
// tests do not fight over collector registration.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	cfg := &config.Config{
		Port:                 "0",
		JWTSecret:            "test-secret-not-for-production",
		Env:                  "test",
		PageSize:             10,
		IndexCacheTTLSeconds: 20,
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	followRepo := repository.NewFollowRepository(db)

	s := &Server{
		config:      cfg,
		db:          db,
		pageCache:   cache.NewMemoryPageStore(),
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		groupRepo:   groupRepo,
		followRepo:  followRepo,
	}
	s.feedService = service.NewFeedService(postRepo, groupRepo, userRepo, cfg.PageSize)
	s.followService = service.NewFollowService(followRepo, userRepo)
	s.postService = service.NewPostService(postRepo, groupRepo)
	s.commentService = service.NewCommentService(commentRepo, postRepo)
	s.groupService = service.NewGroupService(groupRepo)

	return s
}

// newTestApp mounts the server's routes on a bare Fiber app. When userID is
// non-zero it is injected into locals the way the auth middleware would.
func newTestApp(s *Server, userID uint) *fiber.App {
	app := fiber.New()
	if userID != 0 {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userID", userID)
			return c.Next()
		})
	}

	app.Get("/", s.Index)
	app.Get("/api/posts", s.GetPosts)
	app.Get("/api/posts/:id/comments", s.GetComments)
	app.Get("/api/posts/:id", s.GetPost)
	app.Post("/api/posts", s.CreatePost)
	app.Post("/api/posts/:id/comments", s.CreateComment)
	app.Put("/api/posts/:id", s.UpdatePost)
	app.Delete("/api/posts/:id", s.DeletePost)
	app.Delete("/api/comments/:id", s.DeleteComment)
	app.Get("/api/groups", s.GetGroups)
	app.Get("/api/groups/:slug/posts", s.GetGroupPosts)
	app.Get("/api/groups/:slug", s.GetGroupBySlug)
	app.Post("/api/groups", s.AdminRequired(), s.CreateGroup)
	app.Delete("/api/groups/:slug", s.AdminRequired(), s.DeleteGroup)
	app.Get("/api/users/:username/posts", s.GetUserPosts)
	app.Get("/api/users/:username/followers", s.GetUserFollowers)
	app.Get("/api/users/:username/following", s.GetUserFollowing)
	app.Get("/api/users/:username", s.GetUserProfile)
	app.Post("/api/users/:username/follow", s.FollowUser)
	app.Delete("/api/users/:username/follow", s.UnfollowUser)
	app.Get("/api/feed", s.GetFeed)
	app.Post("/api/admin/cache/clear", s.AdminRequired(), s.ClearIndexCache)

	return app
}

func createUser(t *testing.T, db *gorm.DB, username string, admin bool) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "pw",
		IsAdmin:  admin,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createPost(t *testing.T, db *gorm.DB, author *models.User, text string) *models.Post {
	t.Helper()
	post := &models.Post{
		Text:     text,
		AuthorID: author.ID,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}
