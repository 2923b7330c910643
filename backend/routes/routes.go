package routes

import (
	"project/backend/config"
	"project/backend/controllers"
	"project/backend/gamification"
	"project/backend/middleware"
	"project/backend/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires the stores, the progress engine and every route.
// The clock is injected so tests can pin "now"; pass nil for the
// system clock.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, now gamification.Clock) {
	progressRepo := storage.NewGormProgressRepository(db)
	completionLog := storage.NewGormCompletionLog(db)
	badgeStore := storage.NewGormBadgeStore(db)
	engine := gamification.NewEngine(progressRepo, completionLog, now)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg, engine)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg, engine)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Progress routes
	progressController := controllers.NewProgressController(cfg, engine)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)
	app.Get("/api/challenges", authMiddleware, progressController.GetChallenges)

	// Prompt routes
	promptsController := controllers.NewPromptsController(db, cfg, engine, badgeStore)
	prompts := app.Group("/api/prompts", authMiddleware)
	prompts.Post("/", promptsController.SubmitPrompt)
	prompts.Get("/history", promptsController.GetHistory)

	// Badge routes
	badgesController := controllers.NewBadgesController(cfg, badgeStore)
	app.Get("/api/badges", authMiddleware, badgesController.GetBadges)

	// Leaderboard is public
	leaderboardController := controllers.NewLeaderboardController(db, cfg, progressRepo)
	app.Get("/api/leaderboard", leaderboardController.GetLeaderboard)

	// Admin routes
	adminController := controllers.NewAdminController(db, cfg, engine, progressRepo, completionLog, badgeStore)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Post("/reset", adminController.ResetData)
	admin.Post("/challenges/:id/grant", adminController.GrantChallenge)
}
