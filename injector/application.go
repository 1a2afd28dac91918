package injector

import (
	"github.com/gofiber/fiber/v2"
	"github.com/safatanc/admin-console/internal/app/deliveries"
	"github.com/safatanc/admin-console/internal/app/middlewares"
)

// Application represents the main application container for admin-console
type Application struct {
	HealthHandler       *deliveries.HealthHandler
	UserHandler         *deliveries.UserHandler
	GroupHandler        *deliveries.GroupHandler
	DashboardHandler    *deliveries.DashboardHandler
	RateLimitMiddleware *middlewares.RateLimitMiddleware
}

// RegisterRoutes registers all application routes using a Fiber router
func (app *Application) RegisterRoutes(router fiber.Router) {
	router.Use(middlewares.RequestLogger)

	app.HealthHandler.RegisterRoutes(router)

	// JSON API with per-IP rate limit
	api := router.Group("/api", app.RateLimitMiddleware.LimitByIP(app.RateLimitMiddleware.APILimit))
	app.UserHandler.RegisterRoutes(api)
	app.GroupHandler.RegisterRoutes(api)

	app.DashboardHandler.RegisterRoutes(router)
}
