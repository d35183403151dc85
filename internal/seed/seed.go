// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password shared by every seeded user.
const DefaultPassword = "password123!Dev"

// Seeder populates the database with fake users, groups, posts, comments and
// follow edges.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Seeder{db: db, rand: rand.New(rand.NewSource(seed))}
}

// ClearAll deletes all seeded data. Deletion order follows the foreign keys
// so it works even without cascades.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{
		&models.Follow{},
		&models.Comment{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// SeedUsers creates n users with unique usernames and a shared password.
// The first user is an admin.
func (s *Seeder) SeedUsers(n int) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		username := fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i)
		if len(username) > 30 {
			username = username[:30]
		}
		users = append(users, models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@example.com", username),
			Password: string(hash),
			Bio:      gofakeit.Sentence(8),
			IsAdmin:  i == 0,
		})
	}
	if err := s.db.CreateInBatches(&users, 100).Error; err != nil {
		return nil, fmt.Errorf("create users: %w", err)
	}
	return users, nil
}

// SeedGroups creates a handful of topical groups.
func (s *Seeder) SeedGroups() ([]models.Group, error) {
	groups := []models.Group{
		{Title: "Travel Notes", Slug: "travel-notes", Description: gofakeit.Sentence(10)},
		{Title: "Kitchen Stories", Slug: "kitchen-stories", Description: gofakeit.Sentence(10)},
		{Title: "City Sketches", Slug: "city-sketches", Description: gofakeit.Sentence(10)},
		{Title: "Night Reads", Slug: "night-reads", Description: gofakeit.Sentence(10)},
	}
	if err := s.db.Create(&groups).Error; err != nil {
		return nil, fmt.Errorf("create groups: %w", err)
	}
	return groups, nil
}

// SeedPosts creates n posts spread over the past 90 days. Roughly two thirds
// land in a group, the rest stay ungrouped.
func (s *Seeder) SeedPosts(users []models.User, groups []models.Group, n int) ([]models.Post, error) {
	posts := make([]models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rand.Intn(len(users))]
		post := models.Post{
			Text:      gofakeit.Paragraph(1, 3, 12, "\n"),
			AuthorID:  author.ID,
			CreatedAt: s.pastTime(90),
		}
		if len(groups) > 0 && s.rand.Intn(3) != 0 {
			post.GroupID = &groups[s.rand.Intn(len(groups))].ID
		}
		posts = append(posts, post)
	}
	if err := s.db.CreateInBatches(&posts, 100).Error; err != nil {
		return nil, fmt.Errorf("create posts: %w", err)
	}
	return posts, nil
}

// SeedComments adds up to maxPerPost comments to each post.
func (s *Seeder) SeedComments(users []models.User, posts []models.Post, maxPerPost int) error {
	var comments []models.Comment
	for _, post := range posts {
		for i := 0; i < s.rand.Intn(maxPerPost+1); i++ {
			comments = append(comments, models.Comment{
				Text:      gofakeit.Sentence(12),
				PostID:    post.ID,
				AuthorID:  users[s.rand.Intn(len(users))].ID,
				CreatedAt: post.CreatedAt.Add(time.Duration(1+s.rand.Intn(72)) * time.Hour),
			})
		}
	}
	if len(comments) == 0 {
		return nil
	}
	if err := s.db.CreateInBatches(&comments, 200).Error; err != nil {
		return fmt.Errorf("create comments: %w", err)
	}
	return nil
}

// SeedFollows gives every user a few followed authors. Self edges and
// duplicates are skipped.
func (s *Seeder) SeedFollows(users []models.User, perUser int) error {
	var follows []models.Follow
	seen := make(map[[2]uint]bool)
	for _, user := range users {
		for i := 0; i < perUser; i++ {
			author := users[s.rand.Intn(len(users))]
			if author.ID == user.ID {
				continue
			}
			key := [2]uint{user.ID, author.ID}
			if seen[key] {
				continue
			}
			seen[key] = true
			follows = append(follows, models.Follow{UserID: user.ID, AuthorID: author.ID})
		}
	}
	if len(follows) == 0 {
		return nil
	}
	if err := s.db.CreateInBatches(&follows, 200).Error; err != nil {
		return fmt.Errorf("create follows: %w", err)
	}
	return nil
}

func (s *Seeder) pastTime(maxDays int) time.Time {
	daysBack := s.rand.Intn(maxDays)
	hoursBack := s.rand.Intn(24)
	minsBack := s.rand.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
