package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/devfolio/portfolio-backend/internal/config"
	"github.com/devfolio/portfolio-backend/internal/services"
)

var (
	profileService    *services.ProfileService
	projectService    *services.ProjectService
	cloudinaryService *services.CloudinaryService
	startTime         = time.Now()
)

// requestTimeout bounds every persistence-store round trip.
const requestTimeout = 5 * time.Second

// Init wires the handler package to its services. Call once at startup.
func Init(profiles *services.ProfileService, projects *services.ProjectService) {
	profileService = profiles
	projectService = projects
}

func InitCloudinaryService(cfg *config.Config) error {
	service, err := services.NewCloudinaryService(
		cfg.CloudinaryName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		cfg.UploadFolder,
	)
	if err != nil {
		return err
	}
	cloudinaryService = service
	return nil
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Success: false, Message: message})
}

// respondServerError logs the underlying cause and returns a generic message;
// internals are never echoed to the client.
func respondServerError(w http.ResponseWriter, operation string, err error) {
	log.Printf("%s error: %v", operation, err)
	respondError(w, http.StatusInternalServerError, "Server error")
}
