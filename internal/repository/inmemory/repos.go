package inmemory

import (
	"context"

	"github.com/odryna/blog-platform/backend/internal/models"
)

// The repository interfaces use the same method names per entity (Create,
// GetByID, Update, Delete), so the store exposes one small view type per
// entity instead of implementing them all itself.

type UserRepo struct{ s *Store }

func (s *Store) Users() *UserRepo { return &UserRepo{s} }

func (r *UserRepo) Create(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return r.s.Create(ctx, req)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.s.GetByEmail(ctx, email)
}

func (r *UserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.s.GetByID(ctx, id)
}

type PostRepo struct{ s *Store }

func (s *Store) Posts() *PostRepo { return &PostRepo{s} }

func (r *PostRepo) Create(ctx context.Context, data models.PostData, authorID int) (*models.Post, error) {
	return r.s.CreatePost(ctx, data, authorID)
}

func (r *PostRepo) GetByID(ctx context.Context, id int) (*models.Post, error) {
	return r.s.GetPostByID(ctx, id)
}

func (r *PostRepo) ListPublished(ctx context.Context) ([]models.Post, error) {
	return r.s.ListPublished(ctx)
}

func (r *PostRepo) Update(ctx context.Context, id int, data models.PostData, requesterID int) (*models.Post, error) {
	return r.s.UpdatePost(ctx, id, data, requesterID)
}

func (r *PostRepo) Delete(ctx context.Context, id, requesterID int) (*models.Post, error) {
	return r.s.DeletePost(ctx, id, requesterID)
}

type CommentRepo struct{ s *Store }

func (s *Store) Comments() *CommentRepo { return &CommentRepo{s} }

func (r *CommentRepo) Create(ctx context.Context, data models.CommentData, postID, authorID int) (*models.Comment, error) {
	return r.s.CreateComment(ctx, data, postID, authorID)
}

func (r *CommentRepo) CreateReply(ctx context.Context, data models.CommentData, postID, parentID, authorID int) (*models.Comment, error) {
	return r.s.CreateReply(ctx, data, postID, parentID, authorID)
}

func (r *CommentRepo) GetByID(ctx context.Context, postID, commentID int) (*models.Comment, error) {
	return r.s.GetCommentByID(ctx, postID, commentID)
}

func (r *CommentRepo) ListByPost(ctx context.Context, postID int) ([]models.Comment, error) {
	return r.s.ListByPost(ctx, postID)
}

func (r *CommentRepo) ListReplies(ctx context.Context, postID, parentID int) ([]models.Comment, error) {
	return r.s.ListReplies(ctx, postID, parentID)
}

func (r *CommentRepo) Update(ctx context.Context, postID, commentID int, data models.CommentData, requesterID int) (*models.Comment, error) {
	return r.s.UpdateComment(ctx, postID, commentID, data, requesterID)
}

func (r *CommentRepo) Delete(ctx context.Context, postID, commentID, requesterID int) (*models.Comment, error) {
	return r.s.DeleteComment(ctx, postID, commentID, requesterID)
}
