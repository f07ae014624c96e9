package server

import (
	"errors"

	"campusnet/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// defaultUserID is assumed when a request carries neither a token nor a
// userId field. The root user always exists (seeded at bootstrap).
const defaultUserID uint = 1

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param, label string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid "+label))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// actorID resolves the user performing a request: a valid token wins,
// then an explicit userId in the body, then the root user.
func (s *Server) actorID(c *fiber.Ctx, bodyUserID uint) uint {
	if uid, ok := c.Locals("userID").(uint); ok && uid != 0 {
		return uid
	}
	if bodyUserID != 0 {
		return bodyUserID
	}
	return defaultUserID
}
