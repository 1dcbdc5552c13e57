// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports the state of the service and its dependencies:
// the database connection and the email queue worker.
type HealthController struct {
	dbHealthChecker   func() bool
	emailWorkerStatus func() string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	EmailWorker string `json:"email_worker"`
	Timestamp   string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// emailWorkerStatus reports "running", "stopped" or "disabled".
func NewHealthController(dbHealthChecker func() bool, emailWorkerStatus func() string) *HealthController {
	return &HealthController{
		dbHealthChecker:   dbHealthChecker,
		emailWorkerStatus: emailWorkerStatus,
	}
}

// Check handles GET /health requests. The response is always 200; a lost
// database connection downgrades the overall status to "degraded" so probes
// that inspect the body can tell the difference.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"
	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
	} else {
		status = "degraded"
	}

	workerStatus := "disabled"
	if h.emailWorkerStatus != nil {
		workerStatus = h.emailWorkerStatus()
	}

	response := HealthResponse{
		Status:      status,
		Database:    dbStatus,
		EmailWorker: workerStatus,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
