package service

import (
	"context"
	"strings"

	"campusnet/internal/models"
	"campusnet/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.CommentView, error) {
	const maxCommentLen = 2000

	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Le contenu est requis")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Commentaire trop long (max 2000 caractères)")
	}

	comment := &models.Comment{
		PostID:  in.PostID,
		UserID:  in.UserID,
		Content: in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	view := comment.ToView()
	return &view, nil
}

// ListComments returns a post's comments oldest first. The post must exist.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.CommentView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	views := make([]models.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, comments[i].ToView())
	}
	return views, nil
}
