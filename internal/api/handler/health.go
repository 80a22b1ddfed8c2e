package handler

import (
	"net/http"

	"github.com/abeeranajam31/Ai-powered-Chatot/internal/api/response"
)

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
