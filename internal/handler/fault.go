package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/hpnchanel/scaffold/internal/handler/dto"
	"github.com/hpnchanel/scaffold/internal/middleware"
)

// Fault is the single responder for unhandled failures: handler errors,
// recovered panics and body decoding failures. It logs the failure with a
// stack trace and answers 500. The fault text reaches the client only in
// development.
func (h *Handler) Fault(w http.ResponseWriter, r *http.Request, err error) {
	h.metrics.IncFault()

	stack := debug.Stack()
	var perr *middleware.PanicError
	if errors.As(err, &perr) {
		stack = perr.Stack
	}

	h.logger.LogAttrs(r.Context(), slog.LevelError, "unhandled fault",
		slog.String("request_id", middleware.GetRequestID(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
		slog.String("stack", string(stack)),
	)

	message := msgInternalFailure
	if h.isDevelopment {
		message = err.Error()
	}

	_ = writeJSON(w, http.StatusInternalServerError, dto.FaultResponse{
		Error:   msgFault,
		Message: message,
	})
}
