package v1

import (
	"net/http"
	"time"

	"testimonial-wall-backend/config"
	"testimonial-wall-backend/internal/delivery/http/middleware"
	"testimonial-wall-backend/internal/delivery/http/response"
	"testimonial-wall-backend/internal/domain"
	"testimonial-wall-backend/pkg/auth"
	"testimonial-wall-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type RouterDeps struct {
	ContactUC     domain.ContactUsecase
	SummarizeUC   domain.SummarizeUsecase
	TestimonialUC domain.TestimonialUsecase
	JWKSProvider  *auth.Provider
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	// Hook the custom validators into gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(allowedOrigins(deps.Config))) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	// Wrong method on a known path is 405, not 404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.Header("Allow", "POST, OPTIONS")
		response.Error(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Testimonial wall API is running.", nil)
	})

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Public routes, rate limited per IP
	public := api.Group("")
	public.Use(middleware.RateLimitMiddleware(
		middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	// The contact form triggers outbound email, so it gets a stricter limit
	contact := api.Group("")
	contact.Use(middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(window)))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))

	NewContactHandler(contact, deps.ContactUC)
	NewSummarizeHandler(public, protected, deps.SummarizeUC)
	NewTestimonialHandler(public, protected, deps.TestimonialUC)

	return r
}

func allowedOrigins(cfg *config.Config) []string {
	if cfg.FrontendURL == "" {
		return nil
	}
	return []string{
		cfg.FrontendURL,
		"http://localhost:3000",
		"http://localhost:5173", // Vite dev server
	}
}
