package controller

import (
	"log/slog"
	"net/http"
	"strconv"

	"news-backend/internal/api/middleware"
	"news-backend/internal/api/models"
	"news-backend/internal/api/response"
	"news-backend/internal/api/service"

	"github.com/gin-gonic/gin"
)

// LikeController handles the like toggle and the like-state lookup.
type LikeController struct {
	likeService service.LikeService
}

// NewLikeController creates a new LikeController.
func NewLikeController(likeService service.LikeService) *LikeController {
	return &LikeController{likeService: likeService}
}

// Toggle handles POST /like-news. The actor identity comes from the verified
// token, never from the body.
func (lc *LikeController) Toggle(c *gin.Context) {
	var req models.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "news_id is required")
		return
	}

	claims := middleware.CurrentClaims(c)
	action, likeCount, err := lc.likeService.Toggle(c.Request.Context(), req.NewsID, claims.ID)
	if err != nil {
		slog.Error("failed to toggle like", "error", err, "news_id", req.NewsID, "user_id", claims.ID)
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"likeCount": likeCount,
		"action":    action,
	})
}

// CheckLike handles GET /check-like?userId=&newsId=. Public: a pure lookup
// with caller-supplied identity.
func (lc *LikeController) CheckLike(c *gin.Context) {
	userID, err1 := strconv.ParseInt(c.Query("userId"), 10, 64)
	newsID, err2 := strconv.ParseInt(c.Query("newsId"), 10, 64)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "userId and newsId are required")
		return
	}

	liked, err := lc.likeService.Check(c.Request.Context(), userID, newsID)
	if err != nil {
		slog.Error("failed to check like", "error", err, "news_id", newsID, "user_id", userID)
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
