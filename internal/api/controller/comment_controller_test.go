package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"news-backend/internal/api/middleware"
	"news-backend/internal/api/models"
	"news-backend/internal/api/service"
	"news-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeCommentService struct {
	added     *models.Comment
	addErr    error
	gotUserID int64
	comments  []models.CommentWithAuthor
	deleteErr error
	updateErr error
}

func (f *fakeCommentService) Add(ctx context.Context, userID, newsID int64, text string) (*models.Comment, error) {
	f.gotUserID = userID
	return f.added, f.addErr
}

func (f *fakeCommentService) ListByNews(ctx context.Context, newsID int64) ([]models.CommentWithAuthor, error) {
	return f.comments, nil
}

func (f *fakeCommentService) Delete(ctx context.Context, commentID, requesterID int64) error {
	f.gotUserID = requesterID
	return f.deleteErr
}

func (f *fakeCommentService) Update(ctx context.Context, commentID, requesterID int64, text string) error {
	f.gotUserID = requesterID
	return f.updateErr
}

func setupCommentRouter(svc service.CommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cc := NewCommentController(svc)
	r.GET("/comments/:newsId", cc.ListByNews)
	authed := r.Group("", middleware.RequireAuth(testSecret))
	authed.POST("/comments", cc.Add)
	authed.DELETE("/comments/:commentId", cc.Delete)
	authed.PUT("/comments/:commentId", cc.Update)
	return r
}

func bearerRequest(t *testing.T, method, path string, body any, userID int64) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	token, err := auth.Sign(userID, "reader@gmail.com", testSecret)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAddComment_RequiresToken(t *testing.T) {
	r := setupCommentRouter(&fakeCommentService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/comments", bytes.NewReader(nil))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"No token provided"}`, w.Body.String())
}

func TestAddComment_IdentityFromToken(t *testing.T) {
	svc := &fakeCommentService{added: &models.Comment{ID: 11, UserID: 7, NewsID: 3, CommentText: "great read"}}
	r := setupCommentRouter(svc)

	w := httptest.NewRecorder()
	req := bearerRequest(t, http.MethodPost, "/comments",
		models.AddCommentRequest{NewsID: 3, CommentText: "great read"}, 7)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), svc.gotUserID)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "11", string(body["comment_id"]))
	assert.Contains(t, string(body["message"]), "Comment added")
}

func TestDeleteComment_NonOwnerForbidden(t *testing.T) {
	svc := &fakeCommentService{deleteErr: service.ErrNotCommentOwner}
	r := setupCommentRouter(svc)

	w := httptest.NewRecorder()
	req := bearerRequest(t, http.MethodDelete, "/comments/11", nil, 8)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"You are not authorized to delete this comment"}`, w.Body.String())
}

func TestDeleteComment_Missing(t *testing.T) {
	svc := &fakeCommentService{deleteErr: service.ErrCommentNotFound}
	r := setupCommentRouter(svc)

	w := httptest.NewRecorder()
	req := bearerRequest(t, http.MethodDelete, "/comments/99", nil, 7)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Comment not found"}`, w.Body.String())
}

func TestDeleteComment_Owner(t *testing.T) {
	svc := &fakeCommentService{}
	r := setupCommentRouter(svc)

	w := httptest.NewRecorder()
	req := bearerRequest(t, http.MethodDelete, "/comments/11", nil, 7)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Comment deleted successfully"}`, w.Body.String())
	assert.Equal(t, int64(7), svc.gotUserID)
}

func TestUpdateComment_NonOwnerForbidden(t *testing.T) {
	svc := &fakeCommentService{updateErr: service.ErrNotCommentOwner}
	r := setupCommentRouter(svc)

	w := httptest.NewRecorder()
	req := bearerRequest(t, http.MethodPut, "/comments/11",
		models.UpdateCommentRequest{NewCommentText: "defaced"}, 8)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"You are not authorized to edit this comment"}`, w.Body.String())
}

func TestListComments_PublicAndNewestFirstShape(t *testing.T) {
	svc := &fakeCommentService{comments: []models.CommentWithAuthor{
		{ID: 2, CommentText: "second", UserID: 7, UserName: "Reader"},
		{ID: 1, CommentText: "first", UserID: 8, UserName: "Other"},
	}}
	r := setupCommentRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/comments/3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success  bool                       `json:"success"`
		Comments []models.CommentWithAuthor `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Comments, 2)
	assert.Equal(t, "Reader", body.Comments[0].UserName)
}
