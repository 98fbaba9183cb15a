package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

// --- Mocks ---

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

type slowPinger struct{}

func (slowPinger) Ping(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockPinger{}, &mockPinger{})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks[ComponentDocuments] != CheckOK {
		t.Errorf("expected documents %q, got %q", CheckOK, r.Checks[ComponentDocuments])
	}
	if r.Checks[ComponentGraph] != CheckOK {
		t.Errorf("expected graph %q, got %q", CheckOK, r.Checks[ComponentGraph])
	}
}

func TestCheck_DocumentStoreError(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("conn refused")}, &mockPinger{})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks[ComponentDocuments] != CheckError {
		t.Errorf("expected documents %q, got %q", CheckError, r.Checks[ComponentDocuments])
	}
	if r.Checks[ComponentGraph] != CheckOK {
		t.Errorf("expected graph %q, got %q", CheckOK, r.Checks[ComponentGraph])
	}
}

func TestCheck_GraphError(t *testing.T) {
	svc := New(&mockPinger{}, &mockPinger{err: errors.New("timeout")})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks[ComponentGraph] != CheckError {
		t.Errorf("expected graph %q, got %q", CheckError, r.Checks[ComponentGraph])
	}
}

func TestCheck_BothFail(t *testing.T) {
	svc := New(
		&mockPinger{err: errors.New("db down")},
		&mockPinger{err: errors.New("graph down")},
	)
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks[ComponentDocuments] != CheckError {
		t.Error("expected documents error")
	}
	if r.Checks[ComponentGraph] != CheckError {
		t.Error("expected graph error")
	}
}

func TestCheck_SlowStoreTimesOut(t *testing.T) {
	svc := New(&mockPinger{}, slowPinger{}).WithTimeout(10 * time.Millisecond)

	done := make(chan Report, 1)
	go func() { done <- svc.Check(context.Background()) }()

	select {
	case r := <-done:
		if r.Checks[ComponentGraph] != CheckError {
			t.Errorf("expected graph %q, got %q", CheckError, r.Checks[ComponentGraph])
		}
	case <-time.After(time.Second):
		t.Fatal("health check did not honor the timeout")
	}
}
