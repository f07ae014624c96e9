package server

import (
	"campusnet/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users. Passwords are never serialized and
// email stays private in the directory listing.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	views := make([]models.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].ToView(false))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"users":   views,
		"count":   len(views),
	})
}
