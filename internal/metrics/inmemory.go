package metrics

import (
	"log/slog"
	"sync/atomic"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated   uint64
	UsersRejected  uint64
	RoutesNotFound uint64
	Faults         uint64
}

// LogValue renders the snapshot as a group of slog attributes.
func (s Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("users_created", s.UsersCreated),
		slog.Uint64("users_rejected", s.UsersRejected),
		slog.Uint64("routes_not_found", s.RoutesNotFound),
		slog.Uint64("faults", s.Faults),
	)
}

// InMemoryRecorder stores counters in memory.
type InMemoryRecorder struct {
	usersCreated   atomic.Uint64
	usersRejected  atomic.Uint64
	routesNotFound atomic.Uint64
	faults         atomic.Uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:   m.usersCreated.Load(),
		UsersRejected:  m.usersRejected.Load(),
		RoutesNotFound: m.routesNotFound.Load(),
		Faults:         m.faults.Load(),
	}
}

// IncUserCreated increments the created user counter.
func (m *InMemoryRecorder) IncUserCreated() {
	m.usersCreated.Add(1)
}

// IncUserRejected increments the validation rejection counter.
func (m *InMemoryRecorder) IncUserRejected() {
	m.usersRejected.Add(1)
}

// IncRouteNotFound increments the unmatched route counter.
func (m *InMemoryRecorder) IncRouteNotFound() {
	m.routesNotFound.Add(1)
}

// IncFault increments the fault counter.
func (m *InMemoryRecorder) IncFault() {
	m.faults.Add(1)
}
