package handler

import (
	"github.com/go-chi/chi/v5"

	"github.com/hpnchanel/scaffold/internal/middleware"
)

// defaultMaxRequestBodySize is used when RouterConfig leaves the limit unset.
const defaultMaxRequestBodySize = 100 << 10

// RouterConfig holds the transport settings for NewRouter.
type RouterConfig struct {
	CORS               middleware.CORSConfig
	MaxRequestBodySize int64
}

// NewRouter assembles the middleware chain and the route table.
//
// Every request passes, in order, through request id, security headers,
// CORS, access logging, the fault boundary, and the JSON and URL-encoded
// body decoders before reaching a route or the catch-all. Routes match on
// exact method and path; anything else, including a known path with another
// method, is answered by NotFound.
//
// An outer boundary wraps the whole chain so a panic in the request id,
// security, CORS or logging layers also ends in the JSON 500 response.
func NewRouter(h *Handler, cfg RouterConfig) *chi.Mux {
	maxBody := cfg.MaxRequestBodySize
	if maxBody <= 0 {
		maxBody = defaultMaxRequestBodySize
	}

	r := chi.NewRouter()

	r.Use(middleware.Recoverer(h.Fault))
	r.Use(middleware.RequestID)
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: h.isDevelopment}))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Recoverer(h.Fault))
	r.Use(middleware.JSONBody(maxBody, h.Fault))
	r.Use(middleware.URLEncodedBody(maxBody, h.Fault))

	r.Get("/", h.Wrap(h.Root))
	r.Get("/health", h.Wrap(h.Health))

	r.Get("/api/users", h.Wrap(h.ListUsers))
	r.Post("/api/users", h.Wrap(h.CreateUser))

	notFound := h.Wrap(h.NotFound)
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}
