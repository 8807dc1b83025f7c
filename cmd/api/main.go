package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/comcode/blog-engine/internal/api"
	"github.com/comcode/blog-engine/internal/api/handlers"
	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/models"
	"github.com/comcode/blog-engine/internal/repository"
	"github.com/comcode/blog-engine/internal/services"
	"github.com/comcode/blog-engine/pkg/config"
	"github.com/comcode/blog-engine/pkg/database"
	"github.com/comcode/blog-engine/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting blog engine",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected")

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		log.Warn("JWT_SECRET not set, using default (INSECURE for production)")
		jwtSecret = "change-me-in-production-please"
	}

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer queueClient.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	collectionRepo := repository.NewRepository[models.Collection](db, "collection")
	technologyRepo := repository.NewRepository[models.Technology](db, "technology", "Icon")
	mediaRepo := repository.NewRepository[models.Media](db, "media")

	// Services
	authSvc := services.NewAuthService(userRepo, jwtSecret, cfg.TokenExpiry)
	userSvc := services.NewUserService(userRepo, authSvc, queueClient)
	postSvc := services.NewPostService(postRepo)
	commentSvc := services.NewCommentService(commentRepo)
	collectionSvc := services.NewCollectionService(collectionRepo, postRepo)
	technologySvc := services.NewTechnologyService(technologyRepo)
	mediaSvc := services.NewMediaService(mediaRepo)

	router := api.NewRouter(api.Dependencies{
		HMACSecret:   []byte(jwtSecret),
		Health:       handlers.NewHealthHandler(db),
		Auth:         handlers.NewAuthHandler(authSvc),
		Users:        handlers.NewUsersHandler(userSvc),
		Posts:        handlers.NewPostsHandler(postSvc, commentSvc),
		Technologies: handlers.NewTechnologiesHandler(technologySvc),
		Collections:  handlers.NewResourceHandler[models.Collection, dto.CollectionDTO, dto.CollectionPatch](collectionSvc),
		Comments:     handlers.NewResourceHandler[models.Comment, dto.CommentDTO, dto.CommentPatch](commentSvc),
		Media:        handlers.NewResourceHandler[models.Media, dto.MediaDTO, dto.MediaPatch](mediaSvc),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
