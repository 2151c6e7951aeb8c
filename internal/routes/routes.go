package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/devfolio/portfolio-backend/internal/handlers"
	"github.com/devfolio/portfolio-backend/internal/middleware"
	"github.com/devfolio/portfolio-backend/internal/services"
)

func SetupRoutes(r *chi.Mux, auth *services.AuthService) {
	adminOnly := middleware.AdminAuth(auth)

	// Auth routes
	r.With(middleware.LoginRateLimit).Post("/api/auth/login", handlers.Login)
	r.With(adminOnly).Get("/api/auth/verify", handlers.VerifyToken)

	// Profile routes (public read, admin write)
	r.Get("/api/profile", handlers.GetProfile)
	r.With(adminOnly).Put("/api/profile", handlers.UpdateProfile)
	r.With(adminOnly).Post("/api/profile/upload", handlers.UploadFile)
	r.With(adminOnly).Put("/api/profile/skills", handlers.UpdateSkills)
	r.With(adminOnly).Put("/api/profile/services", handlers.UpdateServices)

	// Project routes (public read, admin write)
	r.Get("/api/projects", handlers.GetProjects)
	r.Get("/api/projects/{id}", handlers.GetProject)
	r.With(adminOnly).Post("/api/projects", handlers.CreateProject)
	r.With(adminOnly).Put("/api/projects/{id}", handlers.UpdateProject)
	r.With(adminOnly).Delete("/api/projects/{id}", handlers.DeleteProject)

	// Health routes
	r.Get("/api/health", handlers.HealthCheck)
}
