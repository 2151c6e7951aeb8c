package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/portfolio-backend/internal/models"
)

// ProfileResponse represents the response carrying the profile document
type ProfileResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    *models.Profile `json:"data"`
}

// SkillsResponse represents the response after replacing the skills array
type SkillsResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []models.Skill `json:"data"`
}

// ServicesResponse represents the response after replacing the services array
type ServicesResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    []models.Service `json:"data"`
}

// UploadResponse represents the response after a file upload
type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// GetProfile returns the singleton profile, creating it on first read.
func GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	profile, err := profileService.GetProfile(ctx)
	if err != nil {
		respondServerError(w, "Get profile", err)
		return
	}

	respondJSON(w, http.StatusOK, ProfileResponse{Success: true, Data: profile})
}

// UpdateProfile applies a field-level merge to the singleton profile.
// Fields absent from the body are left unchanged; provided arrays replace
// the stored arrays wholesale.
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	profile, err := profileService.UpdateProfile(ctx, &update)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			respondError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		respondServerError(w, "Update profile", err)
		return
	}

	respondJSON(w, http.StatusOK, ProfileResponse{
		Success: true,
		Message: "Profile updated successfully",
		Data:    profile,
	})
}

// UpdateSkills replaces the skills array. The body must be
// {"skills": [...]}; any non-array value is rejected.
func UpdateSkills(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Skills json.RawMessage `json:"skills"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	skills, ok := decodeArray[models.Skill](body.Skills)
	if !ok {
		respondError(w, http.StatusBadRequest, "Skills must be an array")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	updated, err := profileService.UpdateSkills(ctx, skills)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			respondError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		respondServerError(w, "Update skills", err)
		return
	}

	respondJSON(w, http.StatusOK, SkillsResponse{
		Success: true,
		Message: "Skills updated successfully",
		Data:    updated,
	})
}

// UpdateServices replaces the services array. The body must be
// {"services": [...]}; any non-array value is rejected.
func UpdateServices(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Services json.RawMessage `json:"services"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	servicesList, ok := decodeArray[models.Service](body.Services)
	if !ok {
		respondError(w, http.StatusBadRequest, "Services must be an array")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	updated, err := profileService.UpdateServices(ctx, servicesList)
	if err != nil {
		respondServerError(w, "Update services", err)
		return
	}

	respondJSON(w, http.StatusOK, ServicesResponse{
		Success: true,
		Message: "Services updated successfully",
		Data:    updated,
	})
}

// decodeArray unmarshals raw into a slice of T and reports whether the JSON
// value actually was an array. Absent and null values are not arrays.
func decodeArray[T any](raw json.RawMessage) ([]T, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !bytes.HasPrefix(trimmed, []byte("[")) {
		return nil, false
	}
	out := []T{}
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, false
	}
	return out, true
}

// UploadFile forwards an uploaded file to Cloudinary and returns its public
// URL. The URL is not persisted here; the dashboard follows up with a profile
// or project update carrying it.
func UploadFile(w http.ResponseWriter, r *http.Request) {
	if cloudinaryService == nil {
		respondError(w, http.StatusInternalServerError, "File uploads are not available")
		return
	}

	// Max 10MB
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	file.Close()

	url, err := cloudinaryService.UploadFileFromHeader(r.Context(), fileHeader)
	if err != nil {
		respondServerError(w, "Upload file", err)
		return
	}

	respondJSON(w, http.StatusOK, UploadResponse{
		Success: true,
		Message: "File uploaded successfully",
		URL:     url,
	})
}
