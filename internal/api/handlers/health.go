package handlers

import (
	"net/http"
	"time"

	"github.com/lukav-dev/userbase/internal/utils"
)

var startTime = time.Now()

type HealthResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// HealthCheck godoc
// @Summary Health check
// @Description Liveness probe with process uptime in seconds
// @Tags Health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.JSONResponse(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(startTime).Seconds(),
	})
}
