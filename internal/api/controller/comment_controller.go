package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"news-backend/internal/api/middleware"
	"news-backend/internal/api/models"
	"news-backend/internal/api/response"
	"news-backend/internal/api/service"

	"github.com/gin-gonic/gin"
)

// CommentController handles the comment CRUD endpoints.
type CommentController struct {
	commentService service.CommentService
}

// NewCommentController creates a new CommentController.
func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Add handles POST /comments.
func (cc *CommentController) Add(c *gin.Context) {
	var req models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "news_id and comment_text are required")
		return
	}

	claims := middleware.CurrentClaims(c)
	comment, err := cc.commentService.Add(c.Request.Context(), claims.ID, req.NewsID, req.CommentText)
	if err != nil {
		slog.Error("failed to add comment", "error", err, "news_id", req.NewsID, "user_id", claims.ID)
		response.Message(c, http.StatusInternalServerError, "Failed to add comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Comment added",
		"comment":    comment,
		"comment_id": comment.ID,
	})
}

// ListByNews handles GET /comments/:newsId.
func (cc *CommentController) ListByNews(c *gin.Context) {
	newsID, err := strconv.ParseInt(c.Param("newsId"), 10, 64)
	if err != nil {
		response.Status(c, http.StatusBadRequest, false, "Invalid news id", nil)
		return
	}

	comments, err := cc.commentService.ListByNews(c.Request.Context(), newsID)
	if err != nil {
		slog.Error("failed to list comments", "error", err, "news_id", newsID)
		response.Status(c, http.StatusInternalServerError, false, "Error fetching comments", nil)
		return
	}
	if comments == nil {
		comments = []models.CommentWithAuthor{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"comments": comments,
	})
}

// Delete handles DELETE /comments/:commentId. Ownership is checked against
// the verified token identity.
func (cc *CommentController) Delete(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusNotFound, "Comment not found")
		return
	}

	claims := middleware.CurrentClaims(c)
	err = cc.commentService.Delete(c.Request.Context(), commentID, claims.ID)
	switch {
	case errors.Is(err, service.ErrCommentNotFound):
		response.Message(c, http.StatusNotFound, "Comment not found")
	case errors.Is(err, service.ErrNotCommentOwner):
		response.Message(c, http.StatusForbidden, "You are not authorized to delete this comment")
	case err != nil:
		slog.Error("failed to delete comment", "error", err, "comment_id", commentID)
		response.Message(c, http.StatusInternalServerError, "An error occurred while deleting the comment")
	default:
		response.Message(c, http.StatusOK, "Comment deleted successfully")
	}
}

// Update handles PUT /comments/:commentId with the same ownership check as
// Delete.
func (cc *CommentController) Update(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusNotFound, "Comment not found")
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "newCommentText is required")
		return
	}

	claims := middleware.CurrentClaims(c)
	err = cc.commentService.Update(c.Request.Context(), commentID, claims.ID, req.NewCommentText)
	switch {
	case errors.Is(err, service.ErrCommentNotFound):
		response.Message(c, http.StatusNotFound, "Comment not found")
	case errors.Is(err, service.ErrNotCommentOwner):
		response.Message(c, http.StatusForbidden, "You are not authorized to edit this comment")
	case err != nil:
		slog.Error("failed to update comment", "error", err, "comment_id", commentID)
		response.Message(c, http.StatusInternalServerError, "An error occurred while updating the comment")
	default:
		response.Message(c, http.StatusOK, "Comment updated successfully")
	}
}
