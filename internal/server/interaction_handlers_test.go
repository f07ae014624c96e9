package server

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackInteraction(t *testing.T) {
	_, app, _ := newTestServer(t)
	aliceID := registerUser(t, app, "alice", "alice@campus.fr")

	var created map[string]any
	doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
		"userId": aliceID, "content": "watch me",
	}, &created)
	postID := int(created["post"].(map[string]any)["id"].(float64))

	t.Run("success", func(t *testing.T) {
		var resp map[string]any
		status := doJSON(t, app, http.MethodPost, "/api/interactions/track", map[string]any{
			"userId": aliceID, "postId": postID, "type": "view", "duration": 12,
		}, &resp)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Interaction enregistrée", resp["message"])
	})

	t.Run("missing type", func(t *testing.T) {
		status := doJSON(t, app, http.MethodPost, "/api/interactions/track", map[string]any{
			"userId": aliceID, "postId": postID,
		}, nil)
		require.Equal(t, http.StatusBadRequest, status)
	})
}

func TestGetRecommendations(t *testing.T) {
	_, app, _ := newTestServer(t)
	aliceID := registerUser(t, app, "alice", "alice@campus.fr")
	bobID := registerUser(t, app, "bob", "bob@campus.fr")

	// Four posts with distinct like counts so the popular ranking is
	// deterministic.
	postIDs := make([]int, 0, 4)
	for _, content := range []string{"p1", "p2", "p3", "p4"} {
		var created map[string]any
		doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
			"userId": aliceID, "content": content,
		}, &created)
		postIDs = append(postIDs, int(created["post"].(map[string]any)["id"].(float64)))
	}
	// p3 gets two likes, p2 one: popular order is p3, p2, then the rest.
	doJSON(t, app, http.MethodPost, "/api/posts/"+strconv.Itoa(postIDs[2])+"/like", map[string]any{"userId": aliceID}, nil)
	doJSON(t, app, http.MethodPost, "/api/posts/"+strconv.Itoa(postIDs[2])+"/like", map[string]any{"userId": bobID}, nil)
	doJSON(t, app, http.MethodPost, "/api/posts/"+strconv.Itoa(postIDs[1])+"/like", map[string]any{"userId": bobID}, nil)

	t.Run("popular fallback without history", func(t *testing.T) {
		var resp map[string]any
		status := doJSON(t, app, http.MethodGet, "/api/users/"+strconv.Itoa(int(bobID))+"/recommendations", nil, &resp)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "populaires", resp["type"])

		recs := resp["recommendations"].([]any)
		require.Len(t, recs, 3)
		assert.EqualValues(t, postIDs[2], recs[0].(map[string]any)["id"])
		assert.EqualValues(t, postIDs[1], recs[1].(map[string]any)["id"])
	})

	t.Run("history based after tracked views", func(t *testing.T) {
		for _, id := range []int{postIDs[0], postIDs[3]} {
			doJSON(t, app, http.MethodPost, "/api/interactions/track", map[string]any{
				"userId": bobID, "postId": id, "type": "view",
			}, nil)
		}

		var resp map[string]any
		status := doJSON(t, app, http.MethodGet, "/api/users/"+strconv.Itoa(int(bobID))+"/recommendations", nil, &resp)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "basé sur votre historique", resp["type"])

		recs := resp["recommendations"].([]any)
		require.Len(t, recs, 2)
		// Most recent view first.
		assert.EqualValues(t, postIDs[3], recs[0].(map[string]any)["id"])
		assert.EqualValues(t, postIDs[0], recs[1].(map[string]any)["id"])
	})

	t.Run("bad user id", func(t *testing.T) {
		status := doJSON(t, app, http.MethodGet, "/api/users/abc/recommendations", nil, nil)
		require.Equal(t, http.StatusBadRequest, status)
	})
}
