package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}

// IncUserRejected is a no-op.
func (n *NoopRecorder) IncUserRejected() {}

// IncRouteNotFound is a no-op.
func (n *NoopRecorder) IncRouteNotFound() {}

// IncFault is a no-op.
func (n *NoopRecorder) IncFault() {}
