package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/devfolio/portfolio-backend/internal/middleware"
	"github.com/devfolio/portfolio-backend/internal/services"
)

const testSecret = "test-secret"

func setupAuth(t *testing.T) *services.AuthService {
	t.Helper()
	auth := services.NewAuthService("admin", "hunter2", "", testSecret, 24*time.Hour)
	InitAuthService(auth)
	return auth
}

func postLogin(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()
	Login(rr, req)
	return rr
}

func TestLoginHandlerSuccess(t *testing.T) {
	setupAuth(t)

	rr := postLogin(t, `{"username":"admin","password":"hunter2"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp LoginResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Token == "" {
		t.Errorf("expected success with token, got %+v", resp)
	}
	if resp.Message != "Login successful" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestLoginHandlerMissingFields(t *testing.T) {
	setupAuth(t)

	for _, body := range []string{`{}`, `{"username":"admin"}`, `{"password":"hunter2"}`} {
		rr := postLogin(t, body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rr.Code)
		}
	}
}

func TestLoginHandlerInvalidBody(t *testing.T) {
	setupAuth(t)

	rr := postLogin(t, `not json`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	setupAuth(t)

	rr := postLogin(t, `{"username":"admin","password":"wrong"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}

	var resp LoginResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success || resp.Token != "" {
		t.Errorf("expected failure without token, got %+v", resp)
	}
	if resp.Message != "Invalid credentials" {
		t.Errorf("expected the generic message, got %q", resp.Message)
	}
}

func TestVerifyHandlerRoundTrip(t *testing.T) {
	auth := setupAuth(t)

	token, err := auth.Login("admin", "hunter2")
	if err != nil {
		t.Fatal(err)
	}

	h := middleware.AdminAuth(auth)(http.HandlerFunc(VerifyToken))
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp VerifyResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Admin == nil || !resp.Admin.IsAdmin || resp.Admin.Username != "admin" {
		t.Errorf("unexpected verify response: %+v", resp)
	}
}
