package handler

import (
	"net/http"

	"github.com/hpnchanel/scaffold/internal/handler/dto"
)

// Health is a liveness endpoint. It always returns 200 with the process
// uptime in seconds; there are no dependencies to check.
//
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) error {
	now := h.now()

	uptime := now.Sub(h.startedAt).Seconds()
	if uptime < 0 {
		uptime = 0
	}

	return writeJSON(w, http.StatusOK, dto.HealthResponse{
		Status:    "OK",
		Uptime:    uptime,
		Timestamp: dto.FormatTimestamp(now),
	})
}
