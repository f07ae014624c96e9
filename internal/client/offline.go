package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"campusnet/internal/models"
)

// Login authenticates against the server. When the server is
// unreachable it fabricates a local demo account so the application
// stays usable, flagging the session as offline.
func (c *Client) Login(ctx context.Context, s *Session, email, password string) error {
	var resp struct {
		User  models.UserView `json:"user"`
		Token string          `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		if IsOffline(err) {
			c.log.Warn("login unreachable, entering demo mode", "error", err)
			s.User = demoUser(s, email)
			s.Token = ""
			s.Offline = true
			return nil
		}
		return err
	}

	s.User = &resp.User
	s.Token = resp.Token
	s.Offline = false
	return nil
}

// Register creates an account, falling back to a local demo account
// when the server is unreachable.
func (c *Client) Register(ctx context.Context, s *Session, username, email, password, fullName, university string) error {
	var resp struct {
		User models.UserView `json:"user"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":   username,
		"email":      email,
		"password":   password,
		"fullName":   fullName,
		"university": university,
	}, &resp)
	if err != nil {
		if IsOffline(err) {
			c.log.Warn("register unreachable, entering demo mode", "error", err)
			user := demoUser(s, email)
			user.Username = username
			if fullName != "" {
				user.FullName = fullName
			}
			if university != "" {
				user.University = university
			}
			s.User = user
			s.Offline = true
			return nil
		}
		return err
	}

	s.User = &resp.User
	s.Offline = false
	return nil
}

// demoUser fabricates an account from the email's local part.
func demoUser(s *Session, email string) *models.UserView {
	username := email
	if at := strings.Index(email, "@"); at > 0 {
		username = email[:at]
	}
	return &models.UserView{
		ID:         s.localID(),
		Username:   username,
		Email:      email,
		FullName:   username,
		University: "Université Démo",
	}
}

// RefreshFeed replaces the cached feed from the server. When the
// server is unreachable the cached copy is kept as is.
func (c *Client) RefreshFeed(ctx context.Context, s *Session) error {
	var posts []models.PostView
	if err := c.do(ctx, http.MethodGet, "/api/posts", s.Token, nil, &posts); err != nil {
		if IsOffline(err) {
			c.log.Warn("feed unreachable, serving cached posts", "cached", len(s.Posts))
			s.Offline = true
			return nil
		}
		return err
	}
	s.Posts = posts
	s.Offline = false
	return nil
}

// CreatePost publishes a post. When the server is unreachable the post
// is prepended locally and queued for replay.
func (c *Client) CreatePost(ctx context.Context, s *Session, content string, tags []string) error {
	if s.User == nil {
		return fmt.Errorf("not logged in")
	}

	var resp struct {
		Post models.PostView `json:"post"`
	}
	err := c.do(ctx, http.MethodPost, "/api/posts", s.Token, map[string]any{
		"userId":  s.User.ID,
		"content": content,
		"tags":    tags,
	}, &resp)
	if err != nil {
		if IsOffline(err) {
			local := models.PostView{
				ID:             s.localID(),
				UserID:         s.User.ID,
				Username:       s.User.Username,
				FullName:       s.User.FullName,
				University:     s.User.University,
				ProfilePicture: models.PlaceholderAvatar,
				Content:        content,
				Tags:           tags,
				Timestamp:      time.Now(),
			}
			s.Posts = append([]models.PostView{local}, s.Posts...)
			s.Pending = append(s.Pending, PendingOp{
				Kind: "post", Content: content, Tags: tags, QueuedAt: time.Now(),
			})
			s.Offline = true
			return nil
		}
		return err
	}

	s.Posts = append([]models.PostView{resp.Post}, s.Posts...)
	return nil
}

// LikePost likes a post, updating the cached counter from the server's
// answer. Offline, the counter is bumped locally and the like queued.
func (c *Client) LikePost(ctx context.Context, s *Session, postID uint) error {
	var resp struct {
		NewLikes int `json:"newLikes"`
	}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", postID), s.Token, map[string]any{
		"userId": userID(s),
	}, &resp)
	if err != nil {
		if IsOffline(err) {
			if !s.Liked[postID] {
				s.Liked[postID] = true
				bumpLikes(s, postID, 1)
				s.Pending = append(s.Pending, PendingOp{
					Kind: "like", PostID: postID, QueuedAt: time.Now(),
				})
			}
			s.Offline = true
			return nil
		}
		return err
	}

	s.Liked[postID] = true
	setLikes(s, postID, resp.NewLikes)
	return nil
}

// AddComment comments on a post. Offline, the cached counter is bumped
// and the comment queued.
func (c *Client) AddComment(ctx context.Context, s *Session, postID uint, content string) error {
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", postID), s.Token, map[string]any{
		"userId":  userID(s),
		"content": content,
	}, nil)
	if err != nil {
		if IsOffline(err) {
			bumpComments(s, postID, 1)
			s.Pending = append(s.Pending, PendingOp{
				Kind: "comment", PostID: postID, Content: content, QueuedAt: time.Now(),
			})
			s.Offline = true
			return nil
		}
		return err
	}

	bumpComments(s, postID, 1)
	return nil
}

// Track records an engagement event. Offline events are queued; they
// are cheap and replayable in order.
func (c *Client) Track(ctx context.Context, s *Session, postID uint, kind string, duration int) error {
	err := c.do(ctx, http.MethodPost, "/api/interactions/track", s.Token, map[string]any{
		"userId":   userID(s),
		"postId":   postID,
		"type":     kind,
		"duration": duration,
	}, nil)
	if err != nil {
		if IsOffline(err) {
			s.Pending = append(s.Pending, PendingOp{
				Kind: "track", PostID: postID, Type: kind, Duration: duration, QueuedAt: time.Now(),
			})
			s.Offline = true
			return nil
		}
		return err
	}
	return nil
}

// Reconcile replays the pending queue in order. It stops at the first
// transport failure, keeping the remaining operations queued. Server
// rejections (4xx) drop the operation: replaying it will never succeed.
// After a full replay the feed is refreshed so synthetic entries are
// replaced by server state.
func (c *Client) Reconcile(ctx context.Context, s *Session) error {
	for len(s.Pending) > 0 {
		op := s.Pending[0]

		var err error
		switch op.Kind {
		case "post":
			err = c.do(ctx, http.MethodPost, "/api/posts", s.Token, map[string]any{
				"userId": userID(s), "content": op.Content, "tags": op.Tags,
			}, nil)
		case "like":
			err = c.do(ctx, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", op.PostID), s.Token, map[string]any{
				"userId": userID(s),
			}, nil)
		case "comment":
			err = c.do(ctx, http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", op.PostID), s.Token, map[string]any{
				"userId": userID(s), "content": op.Content,
			}, nil)
		case "track":
			err = c.do(ctx, http.MethodPost, "/api/interactions/track", s.Token, map[string]any{
				"userId": userID(s), "postId": op.PostID, "type": op.Type, "duration": op.Duration,
			}, nil)
		default:
			err = nil
		}

		if err != nil {
			if IsOffline(err) {
				s.Offline = true
				return err
			}
			c.log.Warn("dropping rejected pending operation", "kind", op.Kind, "error", err)
		}
		s.Pending = s.Pending[1:]
	}

	s.Offline = false
	return c.RefreshFeed(ctx, s)
}

func userID(s *Session) uint {
	if s.User != nil {
		return s.User.ID
	}
	return 0
}

func bumpLikes(s *Session, postID uint, delta int) {
	for i := range s.Posts {
		if s.Posts[i].ID == postID {
			s.Posts[i].Likes += delta
			return
		}
	}
}

func setLikes(s *Session, postID uint, likes int) {
	for i := range s.Posts {
		if s.Posts[i].ID == postID {
			s.Posts[i].Likes = likes
			return
		}
	}
}

func bumpComments(s *Session, postID uint, delta int) {
	for i := range s.Posts {
		if s.Posts[i].ID == postID {
			s.Posts[i].Comments += delta
			return
		}
	}
}
