package repository

import (
	"context"
	"testing"

	"campusnet/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAuthor(t *testing.T, repo UserRepository) *models.User {
	t.Helper()
	user := &models.User{Username: "alice", Email: "alice@campus.fr", Password: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestPostRepository_Like(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	author := seedAuthor(t, users)
	post := &models.Post{UserID: author.ID, Content: "like semantics"}
	require.NoError(t, posts.Create(ctx, post))

	t.Run("first like bumps the counter", func(t *testing.T) {
		res, err := posts.Like(ctx, author.ID, post.ID)
		require.NoError(t, err)
		assert.False(t, res.Already)
		assert.Equal(t, 1, res.Likes)
	})

	t.Run("duplicate like leaves the counter alone", func(t *testing.T) {
		res, err := posts.Like(ctx, author.ID, post.ID)
		require.NoError(t, err)
		assert.True(t, res.Already)
		assert.Equal(t, 1, res.Likes)

		var likeRows int64
		require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likeRows).Error)
		assert.EqualValues(t, 1, likeRows)
	})

	t.Run("unknown post", func(t *testing.T) {
		_, err := posts.Like(ctx, author.ID, 9999)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestPostRepository_ListPreloadsAuthors(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	author := seedAuthor(t, users)
	require.NoError(t, posts.Create(ctx, &models.Post{UserID: author.ID, Content: "hello"}))

	listed, err := posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].User)
	assert.Equal(t, "alice", listed[0].User.Username)
}

func TestUserRepository_Create_Conflicts(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	seedAuthor(t, users)

	err := users.Create(ctx, &models.User{Username: "alice", Email: "other@campus.fr", Password: "x"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)

	err = users.Create(ctx, &models.User{Username: "bob", Email: "alice@campus.fr", Password: "x"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestUserRepository_GetByEmail_MissIsNilNil(t *testing.T) {
	db := testDB(t)
	users := NewUserRepository(db)

	user, err := users.GetByEmail(context.Background(), "nobody@campus.fr")
	require.NoError(t, err)
	assert.Nil(t, user)
}
