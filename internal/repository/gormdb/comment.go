package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/odryna/blog-platform/backend/internal/apperror"
	"github.com/odryna/blog-platform/backend/internal/models"
	"github.com/odryna/blog-platform/backend/internal/moderation"
)

type CommentRepo struct {
	db     *gorm.DB
	filter *moderation.Filter
}

func NewCommentRepo(db *gorm.DB, filter *moderation.Filter) *CommentRepo {
	return &CommentRepo{db: db, filter: filter}
}

func (r *CommentRepo) Create(ctx context.Context, data models.CommentData, postID, authorID int) (*models.Comment, error) {
	// the parent post must exist
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("post", postID)
		}
		return nil, err
	}

	comment := models.Comment{
		Text:      data.Text,
		PostID:    postID,
		AuthorID:  authorID,
		IsBlocked: r.filter.IsProfane(data.Text),
	}

	if err := r.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepo) CreateReply(ctx context.Context, data models.CommentData, postID, parentID, authorID int) (*models.Comment, error) {
	// the parent must already exist on the same post, which keeps the
	// comment tree acyclic by construction
	parent, err := r.GetByID(ctx, postID, parentID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		Text:            data.Text,
		PostID:          postID,
		ParentCommentID: &parent.ID,
		AuthorID:        authorID,
		IsBlocked:       r.filter.IsProfane(data.Text),
	}

	if err := r.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepo) GetByID(ctx context.Context, postID, commentID int) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		First(&comment, commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("comment", commentID)
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepo) ListByPost(ctx context.Context, postID int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND is_blocked = ?", postID, false).
		Order("created_at desc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepo) ListReplies(ctx context.Context, postID, parentID int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND parent_comment_id = ? AND is_blocked = ?", postID, parentID, false).
		Order("created_at desc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepo) Update(ctx context.Context, postID, commentID int, data models.CommentData, requesterID int) (*models.Comment, error) {
	var comment models.Comment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("post_id = ?", postID).
			First(&comment, commentID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("comment", commentID)
			}
			return err
		}

		if comment.AuthorID != requesterID {
			return apperror.NotAuthor("comment")
		}

		comment.Text = data.Text
		if r.filter.IsProfane(data.Text) {
			comment.IsBlocked = true
		}

		return tx.Save(&comment).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepo) Delete(ctx context.Context, postID, commentID, requesterID int) (*models.Comment, error) {
	var comment models.Comment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("post_id = ?", postID).
			First(&comment, commentID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("comment", commentID)
			}
			return err
		}

		if comment.AuthorID != requesterID {
			return apperror.NotAuthor("comment")
		}

		// cascade: collect the reply subtree level by level
		ids := []int{comment.ID}
		frontier := []int{comment.ID}
		for len(frontier) > 0 {
			var children []int
			err := tx.Model(&models.Comment{}).
				Where("parent_comment_id IN ?", frontier).
				Pluck("id", &children).Error
			if err != nil {
				return err
			}
			frontier = children
			ids = append(ids, children...)
		}

		return tx.Delete(&models.Comment{}, ids).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}
