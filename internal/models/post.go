package models

import "time"

// Post represents a feed entry. Likes, CommentsCount and Shares are
// denormalized aggregates: incremented on insert, never recomputed.
type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	User          *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	University    string    `json:"university"`
	ImageURL      string    `json:"image_url"`
	Likes         int       `gorm:"not null;default:0" json:"likes"`
	CommentsCount int       `gorm:"not null;default:0" json:"comments_count"`
	Shares        int       `gorm:"not null;default:0" json:"shares"`
	Tags          []string  `gorm:"serializer:json" json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
