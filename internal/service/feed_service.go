package service

import (
	"context"
	"strings"

	"campusnet/internal/models"
	"campusnet/internal/repository"
)

type FeedService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID     uint
	Content    string
	University string
	ImageURL   string
	Tags       []string
}

func NewFeedService(postRepo repository.PostRepository, userRepo repository.UserRepository) *FeedService {
	return &FeedService{postRepo: postRepo, userRepo: userRepo}
}

// ListPosts returns the whole feed, newest first.
func (s *FeedService) ListPosts(ctx context.Context) ([]models.PostView, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.PostView, 0, len(posts))
	for i := range posts {
		views = append(views, posts[i].ToView())
	}
	return views, nil
}

// CreatePost publishes a post for the given author. The display
// university is the one submitted with the post, falling back to the
// author's and then to a neutral default.
func (s *FeedService) CreatePost(ctx context.Context, in CreatePostInput) (*models.PostView, error) {
	const maxContentLen = 5000

	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Le contenu est requis")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Contenu trop long (max 5000 caractères)")
	}

	author, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	university := strings.TrimSpace(in.University)
	if university == "" {
		university = author.University
	}
	if university == "" {
		university = "Ton Université"
	}

	post := &models.Post{
		UserID:     author.ID,
		User:       author,
		Content:    in.Content,
		University: university,
		ImageURL:   in.ImageURL,
		Tags:       tags,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	view := post.ToView()
	return &view, nil
}

// LikePost records a like and returns the resulting counter along with
// whether this user had already liked the post.
func (s *FeedService) LikePost(ctx context.Context, userID, postID uint) (*repository.LikeResult, error) {
	if postID == 0 {
		return nil, models.NewValidationError("Post invalide")
	}
	return s.postRepo.Like(ctx, userID, postID)
}
