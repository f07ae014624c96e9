package server

import (
	"campusnet/internal/models"
	"campusnet/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TrackInteraction handles POST /api/interactions/track
func (s *Server) TrackInteraction(c *fiber.Ctx) error {
	var req struct {
		UserID   uint   `json:"userId"`
		PostID   uint   `json:"postId"`
		Type     string `json:"type"`
		Duration int    `json:"duration"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	err := s.recService.Track(c.Context(), service.TrackInteractionInput{
		UserID:   s.actorID(c, req.UserID),
		PostID:   req.PostID,
		Type:     req.Type,
		Duration: req.Duration,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Interaction enregistrée",
	})
}

// GetRecommendations handles GET /api/users/:userId/recommendations
func (s *Server) GetRecommendations(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}

	recs, err := s.recService.Recommend(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"recommendations": recs.Posts,
		"type":            recs.Type,
	})
}
