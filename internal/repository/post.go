package repository

import (
	"context"
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// PostOrder is an explicit ordering for post listings. Every read takes one;
// the zero value means newest first with id as a stable tie-breaker.
type PostOrder string

const (
	// PostOrderNewestFirst is the default ordering across all listings.
	PostOrderNewestFirst PostOrder = "created_at DESC, id DESC"
	// PostOrderOldestFirst reverses the default.
	PostOrderOldestFirst PostOrder = "created_at ASC, id ASC"
)

func (o PostOrder) clause() string {
	if o == "" {
		return string(PostOrderNewestFirst)
	}
	return string(o)
}

// PostRepository defines persistence operations for posts. All listings are
// page-based (1-based page numbers) and return the total count alongside the
// page so callers can derive pagination metadata. Out-of-range pages yield an
// empty slice, not an error.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context, page, size int, order PostOrder) ([]models.Post, int64, error)
	ListByGroupID(ctx context.Context, groupID uint, page, size int, order PostOrder) ([]models.Post, int64, error)
	ListByAuthorID(ctx context.Context, authorID uint, page, size int, order PostOrder) ([]models.Post, int64, error)
	ListFeed(ctx context.Context, userID uint, page, size int, order PostOrder) ([]models.Post, int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// Update persists changed fields. The created timestamp is write-once at the
// model level and is never modified here.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) ListAll(ctx context.Context, page, size int, order PostOrder) ([]models.Post, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Post{})
	return r.listPage(q, page, size, order)
}

func (r *postRepository) ListByGroupID(ctx context.Context, groupID uint, page, size int, order PostOrder) ([]models.Post, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Post{}).Where("group_id = ?", groupID)
	return r.listPage(q, page, size, order)
}

func (r *postRepository) ListByAuthorID(ctx context.Context, authorID uint, page, size int, order PostOrder) ([]models.Post, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Post{}).Where("author_id = ?", authorID)
	return r.listPage(q, page, size, order)
}

// ListFeed returns posts whose author is followed by userID. A user who
// follows no one gets an empty sequence.
func (r *postRepository) ListFeed(ctx context.Context, userID uint, page, size int, order PostOrder) ([]models.Post, int64, error) {
	followed := r.db.Model(&models.Follow{}).
		Select("author_id").
		Where("user_id = ?", userID)
	q := r.db.WithContext(ctx).Model(&models.Post{}).Where("author_id IN (?)", followed)
	return r.listPage(q, page, size, order)
}

// listPage runs the shared count-then-fetch pagination over a filtered query.
func (r *postRepository) listPage(q *gorm.DB, page, size int, order PostOrder) ([]models.Post, int64, error) {
	if page < 1 {
		page = 1
	}

	// Fresh sessions so the count statement does not leak into the fetch.
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var posts []models.Post
	err := q.Session(&gorm.Session{}).
		Preload("Author").
		Preload("Group").
		Order(order.clause()).
		Limit(size).
		Offset((page - 1) * size).
		Find(&posts).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}
