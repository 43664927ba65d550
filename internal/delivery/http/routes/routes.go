package routes

import (
	"job-board/internal/delivery/http/handler"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health *handler.HealthHandler
	Auth   *handler.AuthHandler
	Jobs   *handler.JobsHandler
	Feed   *ws.Handler
	AuthMw *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", r.Health.Health)

	app.Post("/register", r.Auth.Register)
	app.Post("/login", r.Auth.Login)
	app.Get("/authenticate", r.Auth.Authenticate, r.AuthMw.Middleware())

	api := app.Group("/api")
	api.Get("/jobs", r.Jobs.List)
	api.Get("/jobs/:id", r.Jobs.Detail)
	api.Post("/jobs", r.Jobs.Create, r.AuthMw.Middleware())
	api.Put("/jobs/:id", r.Jobs.Update, r.AuthMw.Middleware())

	if r.Feed != nil {
		app.Get("/ws/jobs", r.Feed.HandleJobsFeed)
	}
}
