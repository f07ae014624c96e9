// Package client is the Go consumer of the Campus Network API. It keeps
// a local session with the cached feed and degrades to an offline demo
// mode with a pending-operation queue when the server is unreachable.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"campusnet/internal/models"
)

// Client talks to a Campus Network server.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger used for offline fallbacks.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a Client for the given base URL (e.g. "http://localhost:3000").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// transportError wraps a failure to reach the server at all, as opposed
// to an HTTP error status. Only transport errors trigger offline mode.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return "server unreachable: " + e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

// IsOffline reports whether err means the server could not be reached.
func IsOffline(err error) bool {
	var te *transportError
	return errors.As(err, &te)
}

// apiError is a non-2xx response from the server.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &transportError{err: err}
	}

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		_ = json.Unmarshal(data, &envelope)
		if envelope.Error == "" {
			envelope.Error = http.StatusText(resp.StatusCode)
		}
		return &apiError{Status: resp.StatusCode, Code: envelope.Code, Message: envelope.Error}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// Comments fetches a post's comments, oldest first.
func (c *Client) Comments(ctx context.Context, s *Session, postID uint) ([]models.CommentView, error) {
	var resp struct {
		Comments []models.CommentView `json:"comments"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", postID), s.Token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// Recommendations fetches suggested posts for the session user.
func (c *Client) Recommendations(ctx context.Context, s *Session) (string, []models.PostView, error) {
	if s.User == nil {
		return "", nil, fmt.Errorf("not logged in")
	}
	var resp struct {
		Recommendations []models.PostView `json:"recommendations"`
		Type            string            `json:"type"`
	}
	path := fmt.Sprintf("/api/users/%d/recommendations", s.User.ID)
	if err := c.do(ctx, http.MethodGet, path, s.Token, nil, &resp); err != nil {
		return "", nil, err
	}
	return resp.Type, resp.Recommendations, nil
}
