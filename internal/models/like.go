package models

import "time"

// Like represents a user's like on a post.
// The combination of PostID and UserID must be unique; the row's
// existence is the "liked" state and duplicate likes are no-ops.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
