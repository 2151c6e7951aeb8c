package handlers

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/devfolio/portfolio-backend/internal/database"
)

// HealthResponse reports liveness, DB connectivity and memory usage.
type HealthResponse struct {
	Uptime    float64        `json:"uptime"` // seconds
	Timestamp int64          `json:"timestamp"`
	Date      string         `json:"date"`
	Status    string         `json:"status"`
	Database  DatabaseHealth `json:"database"`
	Memory    MemoryHealth   `json:"memory"`
	Server    ServerInfo     `json:"server"`
	Error     string         `json:"error,omitempty"`
}

type DatabaseHealth struct {
	Status string `json:"status"`
}

type MemoryHealth struct {
	Alloc      string `json:"alloc"`
	TotalAlloc string `json:"total_alloc"`
	Sys        string `json:"sys"`
}

type ServerInfo struct {
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
	PID        int    `json:"pid"`
	Goroutines int    `json:"goroutines"`
}

// HealthCheck reports server health. Returns 503 when MongoDB is unreachable
// so load balancers and uptime monitors treat the instance as down.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	now := time.Now()
	resp := HealthResponse{
		Uptime:    time.Since(startTime).Seconds(),
		Timestamp: now.UnixMilli(),
		Date:      now.UTC().Format(time.RFC3339),
		Status:    "OK",
		Memory: MemoryHealth{
			Alloc:      formatMB(mem.Alloc),
			TotalAlloc: formatMB(mem.TotalAlloc),
			Sys:        formatMB(mem.Sys),
		},
		Server: ServerInfo{
			GoVersion:  runtime.Version(),
			Platform:   runtime.GOOS,
			PID:        os.Getpid(),
			Goroutines: runtime.NumGoroutine(),
		},
	}

	if err := database.Ping(r.Context()); err != nil {
		resp.Status = "Error"
		resp.Error = "Database not connected"
		resp.Database = DatabaseHealth{Status: "Disconnected"}
		respondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp.Database = DatabaseHealth{Status: "Connected"}
	respondJSON(w, http.StatusOK, resp)
}

func formatMB(bytes uint64) string {
	return fmt.Sprintf("%d MB", bytes/1024/1024)
}
