package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"campusnet/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := NewFeedService(noopPostRepo(), noopUserRepo())
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		_, err := svc.CreatePost(ctx, CreatePostInput{UserID: 1, Content: "   "})
		assertValidationError(t, err)
	})

	t.Run("content too long", func(t *testing.T) {
		_, err := svc.CreatePost(ctx, CreatePostInput{UserID: 1, Content: strings.Repeat("x", 5001)})
		assertValidationError(t, err)
	})
}

func TestFeedService_CreatePost_InheritsAuthorUniversity(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice", University: "Sorbonne Université"}, nil
	}

	var saved *models.Post
	postRepo := noopPostRepo()
	postRepo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 3
		saved = p
		return nil
	}

	svc := NewFeedService(postRepo, userRepo)
	view, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 9, Content: "Hello campus"})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "Sorbonne Université", saved.University)
	assert.Equal(t, "alice", view.Username)
	assert.Equal(t, 0, view.Likes)
	assert.Equal(t, 0, view.Comments)
	assert.NotNil(t, view.Tags, "tags serialize as [] rather than null")
}

func TestFeedService_CreatePost_UniversityPrecedence(t *testing.T) {
	t.Parallel()

	newSvc := func(authorUniversity string, saved **models.Post) *FeedService {
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "alice", University: authorUniversity}, nil
		}
		postRepo := noopPostRepo()
		postRepo.createFn = func(_ context.Context, p *models.Post) error {
			*saved = p
			return nil
		}
		return NewFeedService(postRepo, userRepo)
	}
	ctx := context.Background()

	t.Run("submitted university wins", func(t *testing.T) {
		var saved *models.Post
		svc := newSvc("Sorbonne Université", &saved)
		_, err := svc.CreatePost(ctx, CreatePostInput{
			UserID: 9, Content: "semestre d'échange", University: "Université de Bordeaux",
		})
		require.NoError(t, err)
		assert.Equal(t, "Université de Bordeaux", saved.University)
	})

	t.Run("blank author falls back to the default", func(t *testing.T) {
		var saved *models.Post
		svc := newSvc("", &saved)
		_, err := svc.CreatePost(ctx, CreatePostInput{UserID: 9, Content: "hello"})
		require.NoError(t, err)
		assert.Equal(t, "Ton Université", saved.University)
	})
}

func TestFeedService_ListPosts_FlattensAuthors(t *testing.T) {
	t.Parallel()

	now := time.Now()
	postRepo := noopPostRepo()
	postRepo.listFn = func(_ context.Context) ([]models.Post, error) {
		return []models.Post{
			{ID: 2, Content: "recent", CreatedAt: now,
				User: &models.User{Username: "bob", ProfilePicture: "🧑"}},
			{ID: 1, Content: "orphaned", CreatedAt: now.Add(-time.Hour)},
		}, nil
	}

	svc := NewFeedService(postRepo, noopUserRepo())
	views, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "bob", views[0].Username)
	assert.Equal(t, models.PlaceholderUsername, views[1].Username)
	assert.Equal(t, models.PlaceholderUniversity, views[1].University)
	assert.Equal(t, models.PlaceholderAvatar, views[1].ProfilePicture)
}
