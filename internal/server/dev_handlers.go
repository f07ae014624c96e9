package server

import (
	"time"

	"campusnet/internal/models"
	"campusnet/internal/seed"

	"github.com/gofiber/fiber/v2"
)

// Status handles GET /api/status. Storage failures degrade to zeroed
// stats instead of failing the endpoint.
func (s *Server) Status(c *fiber.Ctx) error {
	dbState := "connected"
	var users, posts, comments int64

	if err := s.db.WithContext(c.Context()).Model(&models.User{}).Count(&users).Error; err != nil {
		dbState = "error"
	} else {
		_ = s.db.WithContext(c.Context()).Model(&models.Post{}).Count(&posts).Error
		_ = s.db.WithContext(c.Context()).Model(&models.Comment{}).Count(&comments).Error
	}

	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now(),
		"database":  dbState,
		"stats": fiber.Map{
			"users":    users,
			"posts":    posts,
			"comments": comments,
		},
	})
}

// DBTest handles GET /api/db-test, a connection probe reporting the
// database engine behind the API.
func (s *Server) DBTest(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError("database unavailable", err))
	}
	if err := sqlDB.PingContext(c.Context()); err != nil {
		return models.RespondWithError(c, models.NewInternalError("database unavailable", err))
	}

	var version string
	if s.db.Dialector.Name() == "postgres" {
		_ = s.db.WithContext(c.Context()).Raw("SELECT version()").Scan(&version).Error
	} else {
		version = s.db.Dialector.Name()
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"database": s.config.DBName,
		"version":  version,
	})
}

// DBData handles GET /api/db-data, reporting row counts per table.
func (s *Server) DBData(c *fiber.Ctx) error {
	users, err := s.userRepo.Count(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	posts, err := s.postRepo.Count(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var comments, interactions int64
	_ = s.db.WithContext(c.Context()).Model(&models.Comment{}).Count(&comments).Error
	_ = s.db.WithContext(c.Context()).Model(&models.Interaction{}).Count(&interactions).Error

	return c.JSON(fiber.Map{
		"success": true,
		"counts": fiber.Map{
			"users":        users,
			"posts":        posts,
			"comments":     comments,
			"interactions": interactions,
		},
	})
}

// DevReset handles POST /api/dev/reset. Refused in production: it
// drops every post, comment, like and non-root user.
func (s *Server) DevReset(c *fiber.Ctx) error {
	if s.config.IsProduction() {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Reset désactivé en production"))
	}

	stats, err := seed.Reset(s.db)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError("reset failed", err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Base de données réinitialisée",
		"stats":   stats,
	})
}
