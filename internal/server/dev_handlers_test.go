package server

import (
	"net/http"
	"testing"

	"campusnet/internal/config"
	"campusnet/internal/database"
	"campusnet/internal/models"
	"campusnet/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestStatus(t *testing.T) {
	_, app, _ := newTestServer(t)

	var resp map[string]any
	status := doJSON(t, app, http.MethodGet, "/api/status", nil, &resp)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "connected", resp["database"])
	stats := resp["stats"].(map[string]any)
	assert.EqualValues(t, 1, stats["users"]) // the seeded root user
}

func TestDBTest(t *testing.T) {
	_, app, _ := newTestServer(t)

	var resp map[string]any
	status := doJSON(t, app, http.MethodGet, "/api/db-test", nil, &resp)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "campus_network_test", resp["database"])
	assert.Equal(t, "sqlite", resp["version"])
}

func TestDBData(t *testing.T) {
	_, app, _ := newTestServer(t)
	aliceID := registerUser(t, app, "alice", "alice@campus.fr")
	doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
		"userId": aliceID, "content": "counted",
	}, nil)

	var resp map[string]any
	status := doJSON(t, app, http.MethodGet, "/api/db-data", nil, &resp)
	require.Equal(t, http.StatusOK, status)

	counts := resp["counts"].(map[string]any)
	assert.EqualValues(t, 2, counts["users"])
	assert.EqualValues(t, 1, counts["posts"])
}

func TestDevReset(t *testing.T) {
	_, app, db := newTestServer(t)

	aliceID := registerUser(t, app, "alice", "alice@campus.fr")
	doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
		"userId": aliceID, "content": "ephemeral",
	}, nil)

	var resp map[string]any
	status := doJSON(t, app, http.MethodPost, "/api/dev/reset", nil, &resp)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Base de données réinitialisée", resp["message"])

	var users, posts int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 1, posts)

	var posts2 []map[string]any
	doJSON(t, app, http.MethodGet, "/api/posts", nil, &posts2)
	require.Len(t, posts2, 1)
	assert.EqualValues(t, seed.WelcomePostID, posts2[0]["id"])
	assert.Equal(t, "etudiant_demo", posts2[0]["username"])
}

func TestDevReset_RefusedInProduction(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, seed.EnsureRootUser(db))

	cfg := &config.Config{
		JWTSecret: "test-secret",
		Port:      "0",
		DBName:    "campus_network_test",
		Env:       "production",
	}
	srv, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)
	app := srv.BuildApp()

	var resp map[string]any
	status := doJSON(t, app, http.MethodPost, "/api/dev/reset", nil, &resp)
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Reset désactivé en production", resp["error"])
}
