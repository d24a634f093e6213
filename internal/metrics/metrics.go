// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures request outcome events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// User endpoint outcomes
	IncUserCreated()
	IncUserRejected()

	// Fallback outcomes
	IncRouteNotFound()
	IncFault()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
