package server

import (
	"campusnet/internal/models"
	"campusnet/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts. The response is a bare array of
// post views, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	views, err := s.feedService.ListPosts(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(views)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		UserID     uint     `json:"userId"`
		Content    string   `json:"content"`
		University string   `json:"university"`
		ImageURL   string   `json:"imageUrl"`
		Tags       []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	view, err := s.feedService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:     s.actorID(c, req.UserID),
		Content:    req.Content,
		University: req.University,
		ImageURL:   req.ImageURL,
		Tags:       req.Tags,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"post":    view,
		"message": "Post publié avec succès !",
	})
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	var req struct {
		UserID uint `json:"userId"`
	}
	// Body is optional; an empty body means the default user likes.
	_ = c.BodyParser(&req)

	result, err := s.feedService.LikePost(c.Context(), s.actorID(c, req.UserID), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	message := "Post liké !"
	if result.Already {
		message = "Déjà liké"
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"postId":   postID,
		"newLikes": result.Likes,
		"message":  message,
	})
}
