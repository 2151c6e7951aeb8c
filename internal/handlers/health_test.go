package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthCheckReportsDatabaseDown(t *testing.T) {
	// No MongoDB connection exists in the test binary
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	HealthCheck(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "Error" || resp.Error != "Database not connected" {
		t.Errorf("unexpected status: %+v", resp)
	}
	if resp.Database.Status != "Disconnected" {
		t.Errorf("expected Disconnected, got %q", resp.Database.Status)
	}
	if resp.Uptime < 0 {
		t.Errorf("expected non-negative uptime, got %f", resp.Uptime)
	}
	if resp.Server.GoVersion == "" || resp.Server.PID == 0 {
		t.Errorf("expected server info populated, got %+v", resp.Server)
	}
	if resp.Memory.Alloc == "" {
		t.Error("expected memory stats populated")
	}
}
