package server

import (
	"news-backend/internal/api/controller"
	"news-backend/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Server owns the gin engine and the route table.
type Server struct {
	engine *gin.Engine
}

// New builds the engine and registers every route. The bearer middleware is
// applied selectively: reads and the account endpoints stay public, every
// mutation of news, likes and comments requires a verified token.
func New(jwtSecret string,
	users *controller.UserController,
	news *controller.NewsController,
	likes *controller.LikeController,
	comments *controller.CommentController,
) *Server {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())
	engine.MaxMultipartMemory = controller.MaxImageSize

	engine.GET("/user-info", users.UserInfo)
	engine.POST("/register", users.Register)
	engine.POST("/login", users.Login)
	engine.POST("/send-reset-link", users.SendResetLink)
	engine.POST("/reset-password", users.ResetPassword)

	engine.GET("/news", news.List)
	engine.GET("/news1", news.ListPublished)
	engine.GET("/news-search", news.Search)
	engine.GET("/check-like", likes.CheckLike)
	engine.GET("/comments/:newsId", comments.ListByNews)

	authed := engine.Group("", middleware.RequireAuth(jwtSecret))
	authed.POST("/news", news.Create)
	authed.POST("/like-news", likes.Toggle)
	authed.POST("/comments", comments.Add)
	authed.DELETE("/comments/:commentId", comments.Delete)
	authed.PUT("/comments/:commentId", comments.Update)

	return &Server{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
