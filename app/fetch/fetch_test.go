package fetch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/demostore/go-store-admin/app/feedback"
)

func TestQuerySetDepsFetchesOnChange(t *testing.T) {
	ctx := context.Background()
	calls := 0
	q := NewQuery(feedback.Discard{}, func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	})

	if _, ok := q.Data(); ok {
		t.Fatal("expected no data before the first fetch")
	}

	if err := q.SetDeps(ctx, false); err != nil {
		t.Fatalf("SetDeps: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 producer call, got %d", calls)
	}

	data, ok := q.Data()
	if !ok || len(data) != 2 {
		t.Fatalf("expected 2 items, got %v (ok=%v)", data, ok)
	}

	// Same fingerprint, no refetch.
	if err := q.SetDeps(ctx, false); err != nil {
		t.Fatalf("SetDeps: %v", err)
	}
	if calls != 1 {
		t.Fatalf("unchanged deps refetched, calls = %d", calls)
	}

	// Changed fingerprint refetches.
	if err := q.SetDeps(ctx, true); err != nil {
		t.Fatalf("SetDeps: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 producer calls, got %d", calls)
	}
}

func TestQueryErrorReportedOnceAndCleared(t *testing.T) {
	ctx := context.Background()
	rec := feedback.NewRecorder(true)
	fail := true
	q := NewQuery[[]string](rec, func(ctx context.Context) ([]string, error) {
		if fail {
			return nil, errors.New("backend unreachable")
		}
		return []string{"a"}, nil
	})

	if err := q.Refetch(ctx); err == nil {
		t.Fatal("expected an error from the failing producer")
	}
	if q.Err() != "backend unreachable" {
		t.Errorf("Err() = %q, want %q", q.Err(), "backend unreachable")
	}
	if got := rec.Errors(); len(got) != 1 || got[0] != "backend unreachable" {
		t.Errorf("error notifications = %v, want exactly one", got)
	}

	fail = false
	if err := q.Refetch(ctx); err != nil {
		t.Fatalf("Refetch: %v", err)
	}
	if q.Err() != "" {
		t.Errorf("Err() = %q after a successful run, want empty", q.Err())
	}
	if got := rec.Errors(); len(got) != 1 {
		t.Errorf("success run added error notifications: %v", got)
	}
}

// A slow run that resolves after a newer run must not overwrite the newer
// run's data.
func TestQueryStaleRunDiscarded(t *testing.T) {
	ctx := context.Background()
	var started int32
	chans := []chan string{make(chan string), make(chan string)}
	q := NewQuery(feedback.Discard{}, func(ctx context.Context) (string, error) {
		i := atomic.AddInt32(&started, 1) - 1
		return <-chans[i], nil
	})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		q.Refetch(ctx)
	}()
	waitFor(t, func() bool { return atomic.LoadInt32(&started) == 1 })

	go func() {
		defer wg.Done()
		q.Refetch(ctx)
	}()
	waitFor(t, func() bool { return atomic.LoadInt32(&started) == 2 })

	// The newer run resolves first, then the older one limps in.
	chans[1] <- "fresh"
	chans[0] <- "stale"
	wg.Wait()

	data, ok := q.Data()
	if !ok || data != "fresh" {
		t.Fatalf("Data() = %q (ok=%v), want %q", data, ok, "fresh")
	}
	if q.Loading() {
		t.Error("Loading() still true after both runs completed")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestQueryPatchIsProvisional(t *testing.T) {
	ctx := context.Background()
	q := NewQuery(feedback.Discard{}, func(ctx context.Context) ([]int, error) {
		return []int{1, 2, 3}, nil
	})

	// Patch before any data is a no-op.
	q.Patch(func(list []int) []int { return append(list, 9) })
	if _, ok := q.Data(); ok {
		t.Fatal("Patch created data out of nothing")
	}

	if err := q.Refetch(ctx); err != nil {
		t.Fatalf("Refetch: %v", err)
	}
	q.Patch(func(list []int) []int { return list[:2] })
	data, _ := q.Data()
	if len(data) != 2 {
		t.Fatalf("patched list = %v, want 2 items", data)
	}

	// The next refetch restores the producer's view.
	if err := q.Refetch(ctx); err != nil {
		t.Fatalf("Refetch: %v", err)
	}
	data, _ = q.Data()
	if len(data) != 3 {
		t.Fatalf("refetched list = %v, want 3 items", data)
	}
}

func TestMutationReturnsResultOrError(t *testing.T) {
	ctx := context.Background()
	rec := feedback.NewRecorder(true)
	m := NewMutation(rec, func(ctx context.Context, n int) (string, error) {
		if n < 0 {
			return "", errors.New("negative input")
		}
		return "ok", nil
	})

	result, err := m.Do(ctx, 1)
	if err != nil || result != "ok" {
		t.Fatalf("Do(1) = (%q, %v), want (ok, nil)", result, err)
	}
	if len(rec.Notifications) != 0 {
		t.Errorf("successful mutation notified: %v", rec.Notifications)
	}

	result, err = m.Do(ctx, -1)
	if err == nil {
		t.Fatal("expected an error for negative input")
	}
	if result != "" {
		t.Errorf("failed mutation returned %q, want the zero value", result)
	}
	if m.Err() != "negative input" {
		t.Errorf("Err() = %q, want %q", m.Err(), "negative input")
	}
	if got := rec.Errors(); len(got) != 1 {
		t.Errorf("error notifications = %v, want exactly one", got)
	}
	if m.Loading() {
		t.Error("Loading() still true after Do returned")
	}
}
