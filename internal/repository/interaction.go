package repository

import (
	"context"

	"campusnet/internal/models"
	"campusnet/internal/observability"

	"gorm.io/gorm"
)

// InteractionRepository records engagement events and answers the
// queries the recommendation heuristics need.
type InteractionRepository interface {
	Create(ctx context.Context, interaction *models.Interaction) error
	RecentlyViewedPosts(ctx context.Context, userID uint, limit int) ([]models.Post, error)
	PopularPosts(ctx context.Context, limit int) ([]models.Post, error)
}

type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository returns a new InteractionRepository implementation.
func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	if err := r.db.WithContext(ctx).Create(interaction).Error; err != nil {
		return models.NewInternalError("failed to record interaction", err)
	}
	observability.InteractionsRecorded.WithLabelValues(interaction.Type).Inc()
	return nil
}

// RecentlyViewedPosts returns the posts behind the user's most recent
// view interactions, most recent first, deduplicated.
func (r *interactionRepository) RecentlyViewedPosts(ctx context.Context, userID uint, limit int) ([]models.Post, error) {
	var postIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Interaction{}).
		Where("user_id = ? AND interaction_type = ?", userID, models.InteractionTypeView).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Pluck("post_id", &postIDs).Error; err != nil {
		return nil, models.NewInternalError("failed to load view history", err)
	}
	if len(postIDs) == 0 {
		return nil, nil
	}

	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id IN ?", postIDs).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError("failed to load viewed posts", err)
	}

	// Restore the interaction order; IN gives no ordering guarantee.
	byID := make(map[uint]models.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	ordered := make([]models.Post, 0, len(posts))
	seen := make(map[uint]struct{}, len(postIDs))
	for _, id := range postIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// PopularPosts returns the most liked posts, ties broken by recency.
func (r *interactionRepository) PopularPosts(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("likes DESC, created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError("failed to load popular posts", err)
	}
	return posts, nil
}
