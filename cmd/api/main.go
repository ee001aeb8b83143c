package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"testimonial-wall-backend/config"
	v1 "testimonial-wall-backend/internal/delivery/http/v1"
	"testimonial-wall-backend/internal/repository/postgres"
	"testimonial-wall-backend/internal/usecase"
	"testimonial-wall-backend/pkg/ai"
	"testimonial-wall-backend/pkg/auth"
	"testimonial-wall-backend/pkg/database"
	"testimonial-wall-backend/pkg/email"
	"testimonial-wall-backend/pkg/logger"
	"testimonial-wall-backend/pkg/redis"
)

// @title           Testimonial Wall Backend API
// @version         1.0
// @description     Gateway behind the public testimonial wall: contact form, AI summaries, testimonial ingestion.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting testimonial wall backend", "port", cfg.Port, "ai_provider", cfg.AIProvider)

	// 3. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory store", "error", err)
	}
	defer redis.Close()

	// 4. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 5. Setup Repositories
	testimonialRepo := postgres.NewTestimonialRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 7. Setup AI Provider
	aiClient := &http.Client{Timeout: time.Duration(cfg.AITimeoutSeconds) * time.Second}
	var provider ai.SummarizationProvider
	switch cfg.AIProvider {
	case "huggingface":
		provider = ai.NewHuggingFaceClient(cfg.HuggingFaceAPIKey, cfg.HuggingFaceModel, ai.WithHTTPClient(aiClient))
	default:
		provider = ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, ai.WithHTTPClient(aiClient))
	}

	// 8. Setup UseCases
	contactUC := usecase.NewContactUsecase(emailService)
	summarizeUC := usecase.NewSummarizeUsecase(provider)
	testimonialUC := usecase.NewTestimonialUsecase(testimonialRepo)

	// 9. Setup Auth Provider (JWKS)
	// Supabase URL is like https://xyz.supabase.co
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:     contactUC,
		SummarizeUC:   summarizeUC,
		TestimonialUC: testimonialUC,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
