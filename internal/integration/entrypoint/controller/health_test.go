package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func performHealthCheck(t *testing.T, h *HealthController) HealthResponse {
	t.Helper()

	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	h.Check(c)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	return response
}

func TestHealthController_Check(t *testing.T) {
	t.Run("reports ok with database and worker up", func(t *testing.T) {
		h := NewHealthController(
			func() bool { return true },
			func() string { return "running" },
		)

		response := performHealthCheck(t, h)
		if response.Status != "ok" {
			t.Errorf("expected status ok, got %s", response.Status)
		}
		if response.Database != "connected" {
			t.Errorf("expected database connected, got %s", response.Database)
		}
		if response.EmailWorker != "running" {
			t.Errorf("expected email worker running, got %s", response.EmailWorker)
		}
		if response.Timestamp == "" {
			t.Error("expected a timestamp")
		}
	})

	t.Run("degrades when the database is unreachable", func(t *testing.T) {
		h := NewHealthController(
			func() bool { return false },
			func() string { return "running" },
		)

		response := performHealthCheck(t, h)
		if response.Status != "degraded" {
			t.Errorf("expected status degraded, got %s", response.Status)
		}
		if response.Database != "disconnected" {
			t.Errorf("expected database disconnected, got %s", response.Database)
		}
	})

	t.Run("reports a disabled worker", func(t *testing.T) {
		h := NewHealthController(
			func() bool { return true },
			func() string { return "disabled" },
		)

		response := performHealthCheck(t, h)
		if response.Status != "ok" {
			t.Errorf("expected status ok, got %s", response.Status)
		}
		if response.EmailWorker != "disabled" {
			t.Errorf("expected email worker disabled, got %s", response.EmailWorker)
		}
	})
}
