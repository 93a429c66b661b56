package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odryna/blog-platform/backend/internal/models"
	"github.com/odryna/blog-platform/backend/internal/repository"
)

type CommentHandler struct {
	comments repository.CommentRepository
}

func NewCommentHandler(comments repository.CommentRepository) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// GetComments returns a post's comments, blocked ones excluded
func (h *CommentHandler) GetComments(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.comments.ListByPost(c.Request.Context(), postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, comments)
}

// GetComment returns a single comment by ID
func (h *CommentHandler) GetComment(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	comment, err := h.comments.GetByID(c.Request.Context(), postID, commentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// CreateComment creates a new comment on a post (PROTECTED)
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	authorID, exists := extractUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.CommentData
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), input, postID, authorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// CreateReply creates a reply under an existing comment (PROTECTED)
func (h *CommentHandler) CreateReply(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	parentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	authorID, exists := extractUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.CommentData
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	comment, err := h.comments.CreateReply(c.Request.Context(), input, postID, parentID, authorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// GetReplies returns the replies of a comment, blocked ones excluded
func (h *CommentHandler) GetReplies(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	parentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	replies, err := h.comments.ListReplies(c.Request.Context(), postID, parentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch replies"})
		return
	}

	if replies == nil {
		replies = []models.Comment{}
	}

	c.JSON(http.StatusOK, replies)
}

// UpdateComment updates a comment (PROTECTED - requires ownership)
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	requesterID, exists := extractUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.CommentData
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), postID, commentID, input, requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment and its replies (PROTECTED - requires ownership)
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	requesterID, exists := extractUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if _, err := h.comments.Delete(c.Request.Context(), postID, commentID, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
