package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/portfolio-backend/internal/services"
)

// initServices wires the handlers to services over a lazily-connected client.
// The driver opens no connection until an operation runs, so tests covering
// validation rejection paths never touch a real MongoDB.
func initServices(t *testing.T) {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatal(err)
	}
	db := client.Database("unused")
	Init(services.NewProfileService(db), services.NewProjectService(db))
}

func TestCreateProjectInvalidBody(t *testing.T) {
	initServices(t)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`not json`))
	rr := httptest.NewRecorder()
	CreateProject(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}

func TestCreateProjectMissingRequiredFields(t *testing.T) {
	initServices(t)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{"description":"x"}`))
	rr := httptest.NewRecorder()
	CreateProject(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Message != "Project title is required" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestCreateProjectAggregatesFieldErrors(t *testing.T) {
	initServices(t)

	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	CreateProject(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(resp.Message, "Project title is required") ||
		!strings.Contains(resp.Message, "Project description is required") {
		t.Errorf("expected both field messages, got %q", resp.Message)
	}
}

func TestCreateProjectUnknownCategory(t *testing.T) {
	initServices(t)

	req := httptest.NewRequest(http.MethodPost, "/api/projects",
		strings.NewReader(`{"title":"t","description":"d","category":"Desktop"}`))
	rr := httptest.NewRecorder()
	CreateProject(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}

func TestUpdateProjectInvalidBody(t *testing.T) {
	initServices(t)

	req := httptest.NewRequest(http.MethodPut, "/api/projects/abc", strings.NewReader(`not json`))
	rr := httptest.NewRecorder()
	UpdateProject(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}

func TestProjectRoutesMalformedID(t *testing.T) {
	initServices(t)

	// A malformed ObjectID names no document; the router reports 404 without
	// touching the store.
	r := chi.NewRouter()
	r.Get("/api/projects/{id}", GetProject)
	r.Put("/api/projects/{id}", UpdateProject)
	r.Delete("/api/projects/{id}", DeleteProject)

	cases := []struct {
		method, body string
	}{
		{http.MethodGet, ""},
		{http.MethodPut, `{"featured":true}`},
		{http.MethodDelete, ""},
	}
	for _, c := range cases {
		req := httptest.NewRequest(c.method, "/api/projects/not-an-object-id", strings.NewReader(c.body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", c.method, rr.Code)
			continue
		}
		var resp errorResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Message != "Project not found" {
			t.Errorf("%s: unexpected message %q", c.method, resp.Message)
		}
	}
}
