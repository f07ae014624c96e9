// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"campusnet/internal/cache"
	"campusnet/internal/models"
	"campusnet/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeResult reports the outcome of a like attempt.
type LikeResult struct {
	Likes   int
	Already bool
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Like(ctx context.Context, userID, postID uint) (*LikeResult, error)
	Count(ctx context.Context) (int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.NewDatabaseMetrics().TrackQuery("create", "posts")()
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError("failed to create post", err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post introuvable")
		}
		return nil, models.NewInternalError("failed to load post", err)
	}
	return &post, nil
}

// List returns the full feed, newest first, through the cache.
func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post

	found, err := cache.GetJSON(ctx, cache.FeedKey, &posts)
	if err == nil && found {
		observability.FeedCacheResults.WithLabelValues("hit").Inc()
		return posts, nil
	}
	observability.FeedCacheResults.WithLabelValues("miss").Inc()

	defer observability.NewDatabaseMetrics().TrackQuery("list", "posts")()
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError("failed to list posts", err)
	}

	_ = cache.SetJSON(ctx, cache.FeedKey, posts, cache.FeedTTL)
	return posts, nil
}

// Like records a like and bumps the post's counter in a single
// transaction. A duplicate like leaves the counter untouched and is
// reported via Already. The returned Likes is the post-transaction value.
func (r *postRepository) Like(ctx context.Context, userID, postID uint) (*LikeResult, error) {
	defer observability.NewDatabaseMetrics().TrackQuery("like", "posts")()

	res := &LikeResult{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post introuvable")
			}
			return err
		}

		// INSERT ... ON CONFLICT DO NOTHING so concurrent likes cannot
		// produce duplicate rows or double increments.
		insert := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Like{UserID: userID, PostID: postID})
		if insert.Error != nil {
			return insert.Error
		}

		if insert.RowsAffected == 0 {
			res.Already = true
			res.Likes = post.Likes
			return nil
		}

		if err := tx.Model(&models.Post{}).
			Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
			return err
		}
		res.Likes = post.Likes + 1
		return nil
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, models.NewInternalError("failed to like post", err)
	}

	cache.InvalidatePost(ctx, postID)
	return res, nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError("failed to count posts", err)
	}
	return count, nil
}
