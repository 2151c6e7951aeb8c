package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devfolio/portfolio-backend/internal/models"
	"github.com/devfolio/portfolio-backend/internal/services"
)

// ProjectListResponse represents the response for listing projects
type ProjectListResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []models.Project `json:"data"`
}

// ProjectResponse represents the response carrying a single project
type ProjectResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    *models.Project `json:"data"`
}

// DeleteProjectResponse represents the response after deleting a project
type DeleteProjectResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GetProjects lists projects, optionally filtered by exact category match.
// "All" (or no filter) returns everything.
func GetProjects(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	projects, err := projectService.List(ctx, category)
	if err != nil {
		respondServerError(w, "Get projects", err)
		return
	}

	respondJSON(w, http.StatusOK, ProjectListResponse{
		Success: true,
		Count:   len(projects),
		Data:    projects,
	})
}

// GetProject returns a single project by id.
func GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	project, err := projectService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		respondServerError(w, "Get project", err)
		return
	}

	respondJSON(w, http.StatusOK, ProjectResponse{Success: true, Data: project})
}

// CreateProject inserts a new project. Validation failures report every
// missing field at once and persist nothing.
func CreateProject(w http.ResponseWriter, r *http.Request) {
	var input models.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	project, err := projectService.Create(ctx, &input)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			respondError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		respondServerError(w, "Create project", err)
		return
	}

	respondJSON(w, http.StatusCreated, ProjectResponse{
		Success: true,
		Message: "Project created successfully",
		Data:    project,
	})
}

// UpdateProject applies a field-level merge to one project.
func UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var update models.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	project, err := projectService.Update(ctx, id, &update)
	if err != nil {
		var vErr *models.ValidationError
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			respondError(w, http.StatusNotFound, "Project not found")
		case errors.As(err, &vErr):
			respondError(w, http.StatusBadRequest, vErr.Error())
		default:
			respondServerError(w, "Update project", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, ProjectResponse{
		Success: true,
		Message: "Project updated successfully",
		Data:    project,
	})
}

// DeleteProject removes a project permanently. Repeating a delete reports
// 404, not a silent success.
func DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := projectService.Delete(ctx, id); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		respondServerError(w, "Delete project", err)
		return
	}

	respondJSON(w, http.StatusOK, DeleteProjectResponse{
		Success: true,
		Message: "Project deleted successfully",
	})
}
