package models

import "time"

type Post struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"not null" json:"content"`
	AuthorID    int       `gorm:"index" json:"author_id"`
	User        User      `gorm:"foreignKey:AuthorID" json:"-"`
	IsPublished bool      `json:"is_published"`
	IsBlocked   bool      `json:"is_blocked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PostData is the caller-supplied portion of a post. The blocked flag is
// derived from content on every save and is deliberately absent here.
type PostData struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	IsPublished bool   `json:"is_published"`
}
