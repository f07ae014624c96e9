package models

import "time"

// Placeholder values substituted when an author row carries no profile
// data (or the author could not be resolved at all).
const (
	PlaceholderUsername   = "Utilisateur"
	PlaceholderUniversity = "Université"
	PlaceholderAvatar     = "👤"
)

// UserView is the wire representation of a user. Email is only
// populated on the authentication endpoints.
type UserView struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	FullName       string    `json:"fullName"`
	University     string    `json:"university"`
	ProfilePicture string    `json:"profilePicture"`
	IsVerified     bool      `json:"isVerified"`
	CreatedAt      time.Time `json:"createdAt"`
}

// PostView is the wire representation of a feed entry, flattened with
// its author's display fields.
type PostView struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"userId"`
	Username       string    `json:"username"`
	FullName       string    `json:"fullName"`
	University     string    `json:"university"`
	ProfilePicture string    `json:"profilePicture"`
	Content        string    `json:"content"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	Likes          int       `json:"likes"`
	Comments       int       `json:"comments"`
	Shares         int       `json:"shares"`
	Tags           []string  `json:"tags"`
	Timestamp      time.Time `json:"timestamp"`
}

// CommentView is the wire representation of a comment.
type CommentView struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"postId"`
	UserID    uint      `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	Timestamp time.Time `json:"timestamp"`
}

// ToView converts a user row to its wire shape. Blank profile fields
// are replaced with display placeholders.
func (u *User) ToView(includeEmail bool) UserView {
	v := UserView{
		ID:             u.ID,
		Username:       u.Username,
		FullName:       u.FullName,
		University:     u.University,
		ProfilePicture: u.ProfilePicture,
		IsVerified:     u.IsVerified,
		CreatedAt:      u.CreatedAt,
	}
	if includeEmail {
		v.Email = u.Email
	}
	if v.ProfilePicture == "" {
		v.ProfilePicture = PlaceholderAvatar
	}
	return v
}

// ToView flattens a post with its preloaded author. A missing or empty
// author falls back to placeholders rather than failing the feed.
func (p *Post) ToView() PostView {
	v := PostView{
		ID:             p.ID,
		UserID:         p.UserID,
		Username:       PlaceholderUsername,
		FullName:       PlaceholderUsername,
		University:     p.University,
		ProfilePicture: PlaceholderAvatar,
		Content:        p.Content,
		ImageURL:       p.ImageURL,
		Likes:          p.Likes,
		Comments:       p.CommentsCount,
		Shares:         p.Shares,
		Tags:           p.Tags,
		Timestamp:      p.CreatedAt,
	}
	if v.Tags == nil {
		v.Tags = []string{}
	}
	if v.University == "" {
		v.University = PlaceholderUniversity
	}
	if p.User != nil {
		if p.User.Username != "" {
			v.Username = p.User.Username
		}
		if p.User.FullName != "" {
			v.FullName = p.User.FullName
		}
		if p.User.ProfilePicture != "" {
			v.ProfilePicture = p.User.ProfilePicture
		}
	}
	return v
}

// ToView flattens a comment with its preloaded author.
func (c *Comment) ToView() CommentView {
	v := CommentView{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Username:  PlaceholderUsername,
		Content:   c.Content,
		Likes:     c.Likes,
		Timestamp: c.CreatedAt,
	}
	if c.User != nil && c.User.Username != "" {
		v.Username = c.User.Username
	}
	return v
}
