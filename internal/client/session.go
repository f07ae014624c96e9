package client

import (
	"encoding/json"
	"os"
	"time"

	"campusnet/internal/models"
)

// PendingOp is a mutation applied locally while the server was
// unreachable, waiting to be replayed by Reconcile.
type PendingOp struct {
	Kind     string    `json:"kind"` // "post", "like", "comment", "track"
	PostID   uint      `json:"postId,omitempty"`
	Content  string    `json:"content,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
	Type     string    `json:"type,omitempty"`
	Duration int       `json:"duration,omitempty"`
	QueuedAt time.Time `json:"queuedAt"`
}

// Session holds the client-side state: the current user, the cached
// feed and the set of posts this user has liked. Offline reports
// whether the last server contact failed and local state may diverge.
type Session struct {
	User    *models.UserView  `json:"user,omitempty"`
	Token   string            `json:"-"`
	Posts   []models.PostView `json:"-"`
	Liked   map[uint]bool     `json:"-"`
	Pending []PendingOp       `json:"-"`
	Offline bool              `json:"-"`

	nextLocalID uint
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{
		Liked:       make(map[uint]bool),
		nextLocalID: 1_000_000,
	}
}

// HasLiked reports whether the session user liked the post.
func (s *Session) HasLiked(postID uint) bool {
	return s.Liked[postID]
}

// localID allocates an identifier for locally synthesized entities,
// well above any server-assigned ID.
func (s *Session) localID() uint {
	s.nextLocalID++
	return s.nextLocalID
}

// sessionState is the persisted subset of a Session. Only the current
// user and the liked-post set survive restarts; the feed is refetched.
type sessionState struct {
	User         *models.UserView `json:"user,omitempty"`
	LikedPostIDs []uint           `json:"likedPostIds"`
}

// Save writes the persistent part of the session to path.
func (s *Session) Save(path string) error {
	state := sessionState{User: s.User, LikedPostIDs: make([]uint, 0, len(s.Liked))}
	for id, liked := range s.Liked {
		if liked {
			state.LikedPostIDs = append(state.LikedPostIDs, id)
		}
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Load restores a session from path. A missing file yields an empty
// session without error.
func Load(path string) (*Session, error) {
	s := NewSession()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	s.User = state.User
	for _, id := range state.LikedPostIDs {
		s.Liked[id] = true
	}
	return s, nil
}
