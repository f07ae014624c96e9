package service

import (
	"context"

	"campusnet/internal/models"
	"campusnet/internal/observability"
	"campusnet/internal/repository"
)

// Recommendation source labels, surfaced to the client as the "type"
// of the recommendation list.
const (
	RecommendationPopular = "populaires"
	RecommendationHistory = "basé sur votre historique"
)

const (
	historyDepth = 5
	popularCount = 3
)

type RecommendationService struct {
	interactionRepo repository.InteractionRepository
}

type TrackInteractionInput struct {
	UserID   uint
	PostID   uint
	Type     string
	Duration int
}

// Recommendations is a typed list of suggested posts. Type names the
// strategy that produced it.
type Recommendations struct {
	Type  string            `json:"type"`
	Posts []models.PostView `json:"posts"`
}

func NewRecommendationService(interactionRepo repository.InteractionRepository) *RecommendationService {
	return &RecommendationService{interactionRepo: interactionRepo}
}

// Track appends an engagement event. Events are write-only from the
// client's perspective; only the recommendation queries read them.
func (s *RecommendationService) Track(ctx context.Context, in TrackInteractionInput) error {
	if in.UserID == 0 || in.PostID == 0 || in.Type == "" {
		return models.NewValidationError("userId, postId et type sont requis")
	}
	return s.interactionRepo.Create(ctx, &models.Interaction{
		UserID:   in.UserID,
		PostID:   in.PostID,
		Type:     in.Type,
		Duration: in.Duration,
	})
}

// Recommend returns posts from the user's recent view history when any
// exists, otherwise falls back to the most liked posts.
func (s *RecommendationService) Recommend(ctx context.Context, userID uint) (*Recommendations, error) {
	if userID != 0 {
		history, err := s.interactionRepo.RecentlyViewedPosts(ctx, userID, historyDepth)
		if err != nil {
			return nil, err
		}
		if len(history) > 0 {
			observability.RecommendationsServed.WithLabelValues("history").Inc()
			return &Recommendations{Type: RecommendationHistory, Posts: toViews(history)}, nil
		}
	}

	popular, err := s.interactionRepo.PopularPosts(ctx, popularCount)
	if err != nil {
		return nil, err
	}
	observability.RecommendationsServed.WithLabelValues("popular").Inc()
	return &Recommendations{Type: RecommendationPopular, Posts: toViews(popular)}, nil
}

func toViews(posts []models.Post) []models.PostView {
	views := make([]models.PostView, 0, len(posts))
	for i := range posts {
		views = append(views, posts[i].ToView())
	}
	return views
}
