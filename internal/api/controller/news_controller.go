package controller

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"news-backend/internal/api/response"
	"news-backend/internal/api/service"

	"github.com/gin-gonic/gin"
)

// MaxImageSize caps an uploaded article image at 50 MiB.
const MaxImageSize = 50 << 20

// NewsController handles article creation and the three read variants.
type NewsController struct {
	newsService service.NewsService
}

// NewNewsController creates a new NewsController.
func NewNewsController(newsService service.NewsService) *NewsController {
	return &NewsController{newsService: newsService}
}

// Create handles POST /news (multipart, field "image").
func (nc *NewsController) Create(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Image is required")
		return
	}
	if file.Size > MaxImageSize {
		response.Error(c, http.StatusBadRequest, "Image exceeds the 50 MiB limit")
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("failed to open uploaded image", "error", err)
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}
	defer f.Close()

	image, err := io.ReadAll(io.LimitReader(f, MaxImageSize))
	if err != nil {
		slog.Error("failed to read uploaded image", "error", err)
		response.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	item, err := nc.newsService.Create(c.Request.Context(),
		c.PostForm("title"), c.PostForm("description"), c.PostForm("category"), image)
	if err != nil {
		slog.Error("failed to create news", "error", err)
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// List handles GET /news: every article newest-first with aggregate like
// counts.
func (nc *NewsController) List(c *gin.Context) {
	items, err := nc.newsService.ListWithLikes(c.Request.Context())
	if err != nil {
		slog.Error("failed to list news", "error", err)
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListPublished handles GET /news1?category=: published articles only,
// optionally filtered by category.
func (nc *NewsController) ListPublished(c *gin.Context) {
	items, err := nc.newsService.ListPublished(c.Request.Context(), c.Query("category"))
	if err != nil {
		slog.Error("failed to list published news", "error", err)
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Search handles GET /news-search?search=. A blank query is rejected before
// any statement is issued.
func (nc *NewsController) Search(c *gin.Context) {
	query := c.Query("search")
	if strings.TrimSpace(query) == "" {
		response.Message(c, http.StatusBadRequest, "Search query cannot be empty.")
		return
	}

	items, err := nc.newsService.Search(c.Request.Context(), query)
	if err != nil {
		slog.Error("failed to search news", "error", err, "query", query)
		response.Error(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, items)
}
