package dto

// RootResponse is the body of GET /.
type RootResponse struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string  `json:"status"`
	Uptime    float64 `json:"uptime"`
	Timestamp string  `json:"timestamp"`
}

// ErrorResponse represents a client error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NotFoundResponse is returned when no route matched.
type NotFoundResponse struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

// FaultResponse is returned for unhandled faults.
type FaultResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
