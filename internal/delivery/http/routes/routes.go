package routes

import (
	"talent-hub/internal/delivery/http/handler"
	"talent-hub/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Registry wires every handler under /api/v1. Reads are public; mutations sit
// behind the admin auth middleware.
type Registry struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Scales    *handler.ScaleHandler
	Catalog   *handler.CatalogHandler
	Clients   *handler.ClientHandler
	Members   *handler.MemberHandler
	Gradings  *handler.GradingHandler
	Profiles  *handler.ProfileHandler
	Goals     *handler.GoalHandler
	Analytics *handler.AnalyticsHandler

	AuthGuard *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	v1 := app.Group("/api/v1")
	guarded := v1.Group("", r.AuthGuard.Middleware())

	r.Auth.RegisterRoutes(v1.Group("/auth"))
	r.Scales.RegisterRoutes(v1, guarded)
	r.Catalog.RegisterRoutes(v1, guarded)
	r.Clients.RegisterRoutes(v1, guarded)
	r.Members.RegisterRoutes(v1, guarded)
	r.Gradings.RegisterRoutes(v1, guarded)
	r.Goals.RegisterRoutes(v1, guarded)
	r.Profiles.RegisterRoutes(guarded)
	r.Analytics.RegisterRoutes(v1)
}
