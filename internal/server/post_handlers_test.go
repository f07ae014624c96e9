package server

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"campusnet/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPosts_NewestFirst(t *testing.T) {
	_, app, db := newTestServer(t)

	now := time.Now()
	for i, content := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, db.Create(&models.Post{
			UserID:    1,
			Content:   content,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	var posts []map[string]any
	status := doJSON(t, app, http.MethodGet, "/api/posts", nil, &posts)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, posts, 3)

	assert.Equal(t, "newest", posts[0]["content"])
	assert.Equal(t, "middle", posts[1]["content"])
	assert.Equal(t, "oldest", posts[2]["content"])
}

func TestGetPosts_MissingAuthorDegrades(t *testing.T) {
	_, app, db := newTestServer(t)

	// Post owned by a user id that does not exist
	require.NoError(t, db.Create(&models.Post{UserID: 999, Content: "orphan"}).Error)

	var posts []map[string]any
	status := doJSON(t, app, http.MethodGet, "/api/posts", nil, &posts)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, posts, 1)

	assert.Equal(t, models.PlaceholderUsername, posts[0]["username"])
	assert.Equal(t, models.PlaceholderUniversity, posts[0]["university"])
	assert.Equal(t, models.PlaceholderAvatar, posts[0]["profilePicture"])
}

func TestCreatePost(t *testing.T) {
	_, app, _ := newTestServer(t)
	aliceID := registerUser(t, app, "alice", "alice@campus.fr")

	t.Run("success", func(t *testing.T) {
		var resp map[string]any
		status := doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
			"userId":  aliceID,
			"content": "Hello campus",
			"tags":    []string{"bienvenue"},
		}, &resp)

		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "Post publié avec succès !", resp["message"])

		post := resp["post"].(map[string]any)
		assert.Equal(t, "Hello campus", post["content"])
		assert.Equal(t, "alice", post["username"])
		assert.Equal(t, "Université de Lyon", post["university"])
		assert.EqualValues(t, 0, post["likes"])
		assert.EqualValues(t, 0, post["comments"])
	})

	t.Run("submitted university wins over the author's", func(t *testing.T) {
		var resp map[string]any
		status := doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
			"userId":     aliceID,
			"content":    "semestre d'échange",
			"university": "Université de Bordeaux",
		}, &resp)
		require.Equal(t, http.StatusCreated, status)

		post := resp["post"].(map[string]any)
		assert.Equal(t, "Université de Bordeaux", post["university"])
	})

	t.Run("blank content is rejected", func(t *testing.T) {
		status := doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
			"userId":  aliceID,
			"content": "   ",
		}, nil)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("no user defaults to root author", func(t *testing.T) {
		var resp map[string]any
		status := doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
			"content": "anonymous note",
		}, &resp)
		require.Equal(t, http.StatusCreated, status)

		post := resp["post"].(map[string]any)
		assert.EqualValues(t, 1, post["userId"])
	})
}

func TestLikePost(t *testing.T) {
	_, app, _ := newTestServer(t)
	aliceID := registerUser(t, app, "alice", "alice@campus.fr")

	var created map[string]any
	doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
		"userId": aliceID, "content": "like me",
	}, &created)
	postID := int(created["post"].(map[string]any)["id"].(float64))

	path := "/api/posts/" + strconv.Itoa(postID) + "/like"

	t.Run("first like increments", func(t *testing.T) {
		var resp map[string]any
		status := doJSON(t, app, http.MethodPost, path, map[string]any{"userId": aliceID}, &resp)
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 1, resp["newLikes"])
		assert.Equal(t, "Post liké !", resp["message"])
	})

	t.Run("second like is a no-op", func(t *testing.T) {
		var resp map[string]any
		status := doJSON(t, app, http.MethodPost, path, map[string]any{"userId": aliceID}, &resp)
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 1, resp["newLikes"])
		assert.Equal(t, "Déjà liké", resp["message"])
	})

	t.Run("different user increments again", func(t *testing.T) {
		bobID := registerUser(t, app, "bob", "bob@campus.fr")
		var resp map[string]any
		status := doJSON(t, app, http.MethodPost, path, map[string]any{"userId": bobID}, &resp)
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 2, resp["newLikes"])
	})

	t.Run("unknown post is 404", func(t *testing.T) {
		status := doJSON(t, app, http.MethodPost, "/api/posts/9999/like", map[string]any{"userId": aliceID}, nil)
		require.Equal(t, http.StatusNotFound, status)
	})

	t.Run("bad id is 400", func(t *testing.T) {
		status := doJSON(t, app, http.MethodPost, "/api/posts/abc/like", map[string]any{"userId": aliceID}, nil)
		require.Equal(t, http.StatusBadRequest, status)
	})
}
