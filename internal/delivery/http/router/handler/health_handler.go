package handler

import (
	"net/http"

	"foodio/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Liveness is the plaintext root probe.
func Liveness(c echo.Context) error {
	return c.String(http.StatusOK, "Server is running")
}

// HealthCheck reports service health as JSON.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
