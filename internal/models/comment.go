package models

import "time"

type Comment struct {
	ID              int       `gorm:"primaryKey" json:"id"`
	Text            string    `gorm:"size:255;not null" json:"text"`
	AuthorID        int       `gorm:"index" json:"author_id"`
	User            User      `gorm:"foreignKey:AuthorID" json:"-"`
	PostID          int       `gorm:"index" json:"post_id"`
	ParentCommentID *int      `gorm:"index" json:"parent_comment_id,omitempty"`
	IsBlocked       bool      `json:"is_blocked"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CommentData struct {
	Text string `json:"text" binding:"required,max=255"`
}

// DailyCommentStats is one day of the sparse comment breakdown series.
type DailyCommentStats struct {
	Date            string `json:"date"`
	TotalComments   int    `json:"total_comments"`
	BlockedComments int    `json:"blocked_comments"`
}
