package models

import "time"

// InteractionTypeView marks a post-open event, the only personalization
// signal the recommendation query reads.
const InteractionTypeView = "view"

// Interaction is an append-only record of a user engaging with a post.
type Interaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	PostID    uint      `gorm:"not null" json:"post_id"`
	Type      string    `gorm:"column:interaction_type;not null" json:"type"`
	Duration  int       `gorm:"not null;default:0" json:"duration"`
	CreatedAt time.Time `json:"created_at"`
}
