package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"news-backend/internal/api/controller"
	"news-backend/internal/api/repository"
	"news-backend/internal/api/service"
	"news-backend/internal/config"
	"news-backend/internal/db"
	"news-backend/internal/logger"
	"news-backend/internal/mail"
	"news-backend/internal/server"
	"news-backend/internal/telemetry"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Initialize telemetry, then the logger that bridges into it.
	shutdown, err := telemetry.Init(cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()
	logger.Init()

	// Open the connection pool and bootstrap the schema.
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()
	if err := db.Initialize(pool); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	// Create repositories.
	userRepo := repository.NewUserRepository(pool)
	newsRepo := repository.NewNewsRepository(pool)
	likeRepo := repository.NewLikeRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)

	// Create services.
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	userService := service.NewUserService(userRepo, mailer, cfg.JWTSecret, cfg.ResetLinkBase)
	newsService := service.NewNewsService(newsRepo)
	likeService := service.NewLikeService(likeRepo)
	commentService := service.NewCommentService(commentRepo)

	// Create controllers and the server.
	srv := server.New(cfg.JWTSecret,
		controller.NewUserController(userService),
		controller.NewNewsController(newsService),
		controller.NewLikeController(likeService),
		controller.NewCommentController(commentService),
	)

	// Graceful shutdown.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
