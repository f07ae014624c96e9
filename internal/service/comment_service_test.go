package service

import (
	"context"
	"strings"
	"testing"

	"campusnet/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopPostRepo())
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 1})
		assertValidationError(t, err)
	})

	t.Run("content too long", func(t *testing.T) {
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			UserID: 1, PostID: 1, Content: strings.Repeat("x", 2001),
		})
		assertValidationError(t, err)
	})
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	t.Parallel()

	repo := noopCommentRepo()
	repo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 42
		c.User = &models.User{ID: c.UserID, Username: "alice"}
		return nil
	}

	svc := NewCommentService(repo, noopPostRepo())
	view, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID: 1, PostID: 5, Content: "Merci !",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), view.ID)
	assert.Equal(t, uint(5), view.PostID)
	assert.Equal(t, "alice", view.Username)
}

func TestCommentService_ListComments_UnknownPost(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post introuvable")
	}

	svc := NewCommentService(noopCommentRepo(), postRepo)
	_, err := svc.ListComments(context.Background(), 999)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
