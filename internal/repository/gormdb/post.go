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

type PostRepo struct {
	db     *gorm.DB
	filter *moderation.Filter
}

func NewPostRepo(db *gorm.DB, filter *moderation.Filter) *PostRepo {
	return &PostRepo{db: db, filter: filter}
}

func (r *PostRepo) Create(ctx context.Context, data models.PostData, authorID int) (*models.Post, error) {
	post := models.Post{
		Title:       data.Title,
		Content:     data.Content,
		AuthorID:    authorID,
		IsPublished: data.IsPublished,
		IsBlocked:   r.filter.IsProfane(data.Title + " " + data.Content),
	}

	if err := r.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepo) GetByID(ctx context.Context, id int) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("post", id)
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepo) ListPublished(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("is_published = ? AND is_blocked = ?", true, false).
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update rewrites the post inside a single transaction so two concurrent
// writers cannot both pass the authorship check against stale state.
func (r *PostRepo) Update(ctx context.Context, id int, data models.PostData, requesterID int) (*models.Post, error) {
	var post models.Post

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("post", id)
			}
			return err
		}

		if post.AuthorID != requesterID {
			return apperror.NotAuthor("post")
		}

		post.Title = data.Title
		post.Content = data.Content
		post.IsPublished = data.IsPublished
		if r.filter.IsProfane(data.Title + " " + data.Content) {
			post.IsBlocked = true
		}

		return tx.Save(&post).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepo) Delete(ctx context.Context, id, requesterID int) (*models.Post, error) {
	var post models.Post

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("post", id)
			}
			return err
		}

		if post.AuthorID != requesterID {
			return apperror.NotAuthor("post")
		}

		// remove the post's comments first to satisfy the FK
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}
