package routes

import (
	"estatehub/internal/adapters/http/handlers"
	"estatehub/internal/adapters/http/middleware"
	"estatehub/internal/adapters/persistence/repositories"
	"estatehub/internal/config"
	"estatehub/internal/core/services"
	"estatehub/internal/pkg/mailer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	premiseRepo := repositories.NewPremiseRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	// Initialize services
	mail := mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	authService := services.NewAuthService(userRepo, mail, cfg)
	userService := services.NewUserService(userRepo)
	premiseService := services.NewPremiseService(premiseRepo)
	settingsService := services.NewSettingsService(settingsRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	profileHandler := handlers.NewProfileHandler(userService, authService)
	premiseHandler := handlers.NewPremiseHandler(premiseService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public, except logout)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, authService)

	// Profile routes (authenticated)
	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Use(middleware.RequireAuth(authService))
	setupProfileRoutes(profileRoutes, profileHandler)

	// Premise routes (public)
	premiseRoutes := apiV1.Group("/premises")
	setupPremiseRoutes(premiseRoutes, premiseHandler)

	// Site settings routes (public)
	settingsRoutes := apiV1.Group("/site-settings")
	setupSettingsRoutes(settingsRoutes, settingsHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, authService *services.AuthService) {
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/logout", middleware.RequireAuth(authService), handler.Logout)
	router.Post("/refresh-token", middleware.AuthRateLimiter(), handler.RefreshToken)

	// Password reset is the most abuse-prone surface
	router.Post("/password-reset", middleware.StrictRateLimiter(), handler.PasswordReset)
	router.Post("/password-reset/confirm", middleware.StrictRateLimiter(), handler.PasswordResetConfirm)
}

// setupProfileRoutes configures profile routes (authenticated)
func setupProfileRoutes(router fiber.Router, handler *handlers.ProfileHandler) {
	router.Get("/user", handler.GetUser)
	router.Put("/profile", handler.UpdateProfile)
	router.Post("/change-password", handler.ChangePassword)
}

// setupPremiseRoutes configures public premise search routes
func setupPremiseRoutes(router fiber.Router, handler *handlers.PremiseHandler) {
	router.Get("/", handler.List)
	router.Get("/rent", handler.ListRent)
	router.Get("/sale", handler.ListSale)
	router.Get("/buildings", handler.Buildings)
	router.Get("/:uuid", handler.Detail)
}

// setupSettingsRoutes configures public site settings routes
func setupSettingsRoutes(router fiber.Router, handler *handlers.SettingsHandler) {
	router.Get("/main-info", handler.MainInfo)
	router.Get("/contacts", handler.Contacts)
}
