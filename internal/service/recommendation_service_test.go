package service

import (
	"context"
	"testing"

	"campusnet/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationService_Track_Validation(t *testing.T) {
	t.Parallel()

	svc := NewRecommendationService(noopInteractionRepo())
	ctx := context.Background()

	err := svc.Track(ctx, TrackInteractionInput{UserID: 1, PostID: 2})
	assertValidationError(t, err)

	err = svc.Track(ctx, TrackInteractionInput{PostID: 2, Type: "view"})
	assertValidationError(t, err)
}

func TestRecommendationService_Recommend_HistoryWins(t *testing.T) {
	t.Parallel()

	repo := noopInteractionRepo()
	repo.recentViewsFn = func(_ context.Context, userID uint, limit int) ([]models.Post, error) {
		assert.Equal(t, uint(7), userID)
		assert.Equal(t, 5, limit)
		return []models.Post{{ID: 3, Content: "seen recently"}}, nil
	}
	repo.popularFn = func(_ context.Context, _ int) ([]models.Post, error) {
		t.Fatal("popular fallback must not run when history exists")
		return nil, nil
	}

	svc := NewRecommendationService(repo)
	recs, err := svc.Recommend(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, RecommendationHistory, recs.Type)
	require.Len(t, recs.Posts, 1)
	assert.Equal(t, uint(3), recs.Posts[0].ID)
}

func TestRecommendationService_Recommend_PopularFallback(t *testing.T) {
	t.Parallel()

	repo := noopInteractionRepo()
	repo.popularFn = func(_ context.Context, limit int) ([]models.Post, error) {
		assert.Equal(t, 3, limit)
		return []models.Post{{ID: 1, Likes: 20}, {ID: 2, Likes: 10}}, nil
	}

	svc := NewRecommendationService(repo)

	t.Run("no view history", func(t *testing.T) {
		recs, err := svc.Recommend(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, RecommendationPopular, recs.Type)
		assert.Len(t, recs.Posts, 2)
	})

	t.Run("anonymous user", func(t *testing.T) {
		recs, err := svc.Recommend(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, RecommendationPopular, recs.Type)
	})
}
