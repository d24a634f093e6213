package metrics

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestInMemoryRecorder_Counts(t *testing.T) {
	t.Parallel()

	m := NewInMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncUserCreated()
			m.IncUserRejected()
			m.IncRouteNotFound()
			m.IncFault()
		}()
	}
	wg.Wait()

	m.IncUserCreated()

	snap := m.Snapshot()
	if snap.UsersCreated != 51 {
		t.Errorf("UsersCreated = %d, want 51", snap.UsersCreated)
	}
	if snap.UsersRejected != 50 {
		t.Errorf("UsersRejected = %d, want 50", snap.UsersRejected)
	}
	if snap.RoutesNotFound != 50 {
		t.Errorf("RoutesNotFound = %d, want 50", snap.RoutesNotFound)
	}
	if snap.Faults != 50 {
		t.Errorf("Faults = %d, want 50", snap.Faults)
	}
}

func TestSnapshot_LogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Info("metrics", "snapshot", Snapshot{UsersCreated: 2, Faults: 1})

	out := buf.String()
	for _, want := range []string{`"users_created":2`, `"faults":1`, `"users_rejected":0`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestNoopRecorder(t *testing.T) {
	t.Parallel()

	r := NewNoop()
	r.IncUserCreated()
	r.IncUserRejected()
	r.IncRouteNotFound()
	r.IncFault()
}
