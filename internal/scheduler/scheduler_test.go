package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms_backend/internal/config"
	"cms_backend/internal/domain"
)

type fakeReconciler struct {
	mu       sync.Mutex
	requests []domain.ReconcileRequest
	deadline bool
	err      error
	onCall   func()
}

func (f *fakeReconciler) Reconcile(ctx context.Context, req domain.ReconcileRequest) (*domain.ReconcileReport, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	_, f.deadline = ctx.Deadline()
	f.mu.Unlock()

	if f.onCall != nil {
		f.onCall()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ReconcileReport{TargetYear: 2025, TargetMonth: "February"}, nil
}

func (f *fakeReconciler) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func testConfig() config.ReconciliationConfig {
	return config.ReconciliationConfig{
		Enabled:  true,
		Schedule: "0 3 1 * *",
		Timezone: "UTC",
		Timeout:  time.Minute,
	}
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	cfg := testConfig()
	cfg.Schedule = "every tuesday"

	_, err := NewScheduler(&fakeReconciler{}, cfg, discard)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse schedule")
}

func TestNewScheduler_InvalidTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Timezone = "Mars/Olympus"

	_, err := NewScheduler(&fakeReconciler{}, cfg, discard)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load timezone")
}

func TestScheduler_RunOnStart(t *testing.T) {
	cfg := testConfig()
	cfg.RunOnStart = true

	ctx, cancel := context.WithCancel(context.Background())
	rec := &fakeReconciler{onCall: cancel}

	s, err := NewScheduler(rec, cfg, discard)
	require.NoError(t, err)

	err = s.Start(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, rec.calls())
	assert.Equal(t, domain.ReconcileRequest{}, rec.requests[0])
	assert.True(t, rec.deadline)
}

func TestScheduler_StopsWithoutRunning(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := &fakeReconciler{}

	s, err := NewScheduler(rec, testConfig(), discard)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Equal(t, 0, rec.calls())
}

func TestScheduler_FailedRunIsLogged(t *testing.T) {
	rec := &fakeReconciler{err: errors.New("db down")}

	s, err := NewScheduler(rec, testConfig(), discard)
	require.NoError(t, err)

	s.runReconcile(context.Background())

	assert.Equal(t, 1, rec.calls())
}
