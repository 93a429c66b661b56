// Package repository defines the persistence contracts for users, posts,
// comments and the daily comment analytics query.
//
// Mutation methods on posts and comments share one discipline: load the
// entity (NotFound if absent), check authorship (NotAuthor if the requester
// is not the recorded author), run the moderation transform over the new
// text (the blocked flag is forced true on a match and never cleared
// automatically), then persist. Implementations must make each
// load-check-write sequence atomic.
//
// List views exclude blocked entities; direct by-id lookups do not, so
// ownership can still be checked against blocked content.
package repository

import (
	"context"
	"time"

	"github.com/odryna/blog-platform/backend/internal/models"
)

type UserRepository interface {
	// Create registers a new user, hashing the password before it is
	// stored. Returns a Duplicate error when the email is taken.
	Create(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, data models.PostData, authorID int) (*models.Post, error)
	GetByID(ctx context.Context, id int) (*models.Post, error)
	// ListPublished returns published, unblocked posts, newest first.
	ListPublished(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, id int, data models.PostData, requesterID int) (*models.Post, error)
	Delete(ctx context.Context, id, requesterID int) (*models.Post, error)
}

type CommentRepository interface {
	Create(ctx context.Context, data models.CommentData, postID, authorID int) (*models.Comment, error)
	// CreateReply attaches a comment under a parent comment. The parent
	// must exist and belong to the same post.
	CreateReply(ctx context.Context, data models.CommentData, postID, parentID, authorID int) (*models.Comment, error)
	GetByID(ctx context.Context, postID, commentID int) (*models.Comment, error)
	// ListByPost returns the post's unblocked comments (replies included),
	// newest first.
	ListByPost(ctx context.Context, postID int) ([]models.Comment, error)
	ListReplies(ctx context.Context, postID, parentID int) ([]models.Comment, error)
	Update(ctx context.Context, postID, commentID int, data models.CommentData, requesterID int) (*models.Comment, error)
	Delete(ctx context.Context, postID, commentID, requesterID int) (*models.Comment, error)
}

type AnalyticsRepository interface {
	// DailyCommentBreakdown returns one entry per calendar day that has at
	// least one comment in [from, to], ascending by date. Nil bounds mean
	// unbounded; to is inclusive of the whole day.
	DailyCommentBreakdown(ctx context.Context, from, to *time.Time) ([]models.DailyCommentStats, error)
}
