package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/devfolio/portfolio-backend/internal/config"
	"github.com/devfolio/portfolio-backend/internal/database"
	"github.com/devfolio/portfolio-backend/internal/handlers"
	"github.com/devfolio/portfolio-backend/internal/middleware"
	"github.com/devfolio/portfolio-backend/internal/routes"
	"github.com/devfolio/portfolio-backend/internal/services"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		log.Println("⚠️  WARNING: ADMIN_PASSWORD / ADMIN_PASSWORD_HASH not set. Admin login is disabled.")
	}
	if cfg.IsProduction() && cfg.JWTSecret == "your-secret-key-change-in-production" {
		log.Println("⚠️  WARNING: JWT_SECRET is the development default. Set a real secret in production.")
	}

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Connect to Redis (optional - rate limiting only)
	if cfg.RedisURI != "" {
		log.Printf("Connecting to Redis...")
		if err := database.ConnectRedis(cfg.RedisURI); err != nil {
			log.Printf("⚠️  WARNING: Failed to connect to Redis: %v", err)
			log.Println("   Global rate limiting will not be available")
		}
		defer database.DisconnectRedis()
	}

	// Initialize Cloudinary service
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		if err := handlers.InitCloudinaryService(cfg); err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("File uploads will not be available")
		} else {
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. File uploads will not be available")
	}

	// Wire services
	authService := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.TokenTTL)
	profileService := services.NewProfileService(database.DB)
	projectService := services.NewProjectService(database.DB)
	handlers.Init(profileService, projectService)
	handlers.InitAuthService(authService)

	// Ensure the compound listing index on projects
	if err := projectService.EnsureIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure project indexes: %v", err)
	} else {
		log.Println("✅ Project indexes ensured")
	}

	// Setup router
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RateLimit)

	// Bare liveness probe (no rate limit headers worth caring about here)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r, authService)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/auth/login")
	log.Println("  GET  /api/auth/verify")
	log.Println("  GET  /api/profile")
	log.Println("  PUT  /api/profile")
	log.Println("  POST /api/profile/upload")
	log.Println("  PUT  /api/profile/skills")
	log.Println("  PUT  /api/profile/services")
	log.Println("  GET  /api/projects")
	log.Println("  GET  /api/projects/{id}")
	log.Println("  POST /api/projects")
	log.Println("  PUT  /api/projects/{id}")
	log.Println("  DELETE /api/projects/{id}")

	log.Printf("🚀 Portfolio backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
