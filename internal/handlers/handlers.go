package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/odryna/blog-platform/backend/internal/analytics"
	"github.com/odryna/blog-platform/backend/internal/apperror"
	"github.com/odryna/blog-platform/backend/internal/auth"
	"github.com/odryna/blog-platform/backend/internal/repository"
)

// Handler combines all handler types
type Handler struct {
	Auth      *AuthHandler
	Post      *PostHandler
	Comment   *CommentHandler
	Analytics *AnalyticsHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(
	users repository.UserRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
	stats *analytics.Service,
	tokens *auth.TokenService,
) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(users, tokens),
		Post:      NewPostHandler(posts),
		Comment:   NewCommentHandler(comments),
		Analytics: NewAnalyticsHandler(stats),
	}
}

// respondError translates repository/service errors into HTTP responses.
// Login failures map to 404 so the response does not reveal whether the
// email exists.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperror.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrNotAuthor):
		status = http.StatusForbidden
	case errors.Is(err, apperror.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, apperror.ErrAuthentication):
		status = http.StatusNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		body := gin.H{"error": appErr.Message}
		if appErr.Field != "" {
			body["field"] = appErr.Field
		}
		c.JSON(status, body)
		return
	}

	c.JSON(status, gin.H{"error": "Internal server error"})
}

// extractUserID reads the authenticated user id placed in the context by
// the auth middleware.
func extractUserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case uint:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		respondError(c, apperror.ValidationFailed(name, name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}
