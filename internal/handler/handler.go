// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hpnchanel/scaffold/internal/handler/dto"
	"github.com/hpnchanel/scaffold/internal/metrics"
)

// APIVersion is reported by GET / and the version command.
const APIVersion = "1.0.0"

// Response messages.
const (
	msgGreeting        = "Hello! The server is running successfully!"
	msgUserCreated     = "User created successfully"
	msgMissingFields   = "Missing name or email"
	msgRouteNotFound   = "Route not found"
	msgFault           = "Something went wrong on the server!"
	msgInternalFailure = "Internal Server Error"
)

// AppHandler is a route handler that reports unexpected failures by
// returning them. Expected outcomes such as validation failures are written
// directly and return nil.
type AppHandler func(w http.ResponseWriter, r *http.Request) error

// Options configures a Handler. Everything here is fixed for the life of
// the process.
type Options struct {
	Logger  *slog.Logger
	Metrics metrics.Recorder

	// IsDevelopment echoes fault messages to clients.
	IsDevelopment bool

	// StartedAt is the process start time used for uptime.
	StartedAt time.Time

	// Now overrides the clock; defaults to time.Now.
	Now func() time.Time
}

// Handler serves every route of the API. It holds no mutable state.
type Handler struct {
	logger        *slog.Logger
	metrics       metrics.Recorder
	isDevelopment bool
	startedAt     time.Time
	now           func() time.Time
}

// New creates a new Handler instance.
func New(opts Options) *Handler {
	h := &Handler{
		logger:        opts.Logger,
		metrics:       opts.Metrics,
		isDevelopment: opts.IsDevelopment,
		startedAt:     opts.StartedAt,
		now:           opts.Now,
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	if h.metrics == nil {
		h.metrics = metrics.NewNoop()
	}
	if h.now == nil {
		h.now = time.Now
	}
	if h.startedAt.IsZero() {
		h.startedAt = h.now()
	}
	return h
}

// Root returns the greeting.
// GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, dto.RootResponse{
		Message:   msgGreeting,
		Version:   APIVersion,
		Timestamp: dto.FormatTimestamp(h.now()),
	})
}

// NotFound answers any request no route matched, echoing the requested
// URL including its query string.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) error {
	h.metrics.IncRouteNotFound()
	return writeJSON(w, http.StatusNotFound, dto.NotFoundResponse{
		Error: msgRouteNotFound,
		Path:  r.URL.RequestURI(),
	})
}

// Wrap adapts an AppHandler to http.HandlerFunc, sending returned errors to
// the fault responder.
func (h *Handler) Wrap(fn AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.Fault(w, r, err)
		}
	}
}

// writeJSON writes a JSON response with the given status code.
// Encoding happens before anything is written so an encoding failure can
// still be answered as a fault.
func writeJSON(w http.ResponseWriter, status int, data any) error {
	buf, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// A failed write means the client went away; there is nobody to tell.
	_, _ = w.Write(buf)
	return nil
}
