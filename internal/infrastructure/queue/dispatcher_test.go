package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lostpaws/petfinder-system/internal/core/ports"
)

// recordingSender collects delivered mail and signals each delivery.
type recordingSender struct {
	mu        sync.Mutex
	delivered []ports.VerificationMail
	signal    chan struct{}
}

func newRecordingSender() *recordingSender {
	return &recordingSender{signal: make(chan struct{}, 16)}
}

func (s *recordingSender) SendVerification(_ context.Context, mail ports.VerificationMail) error {
	s.mu.Lock()
	s.delivered = append(s.delivered, mail)
	s.mu.Unlock()
	s.signal <- struct{}{}
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.delivered)
}

// fakeThrottle throttles a fixed set of addresses and records marks.
type fakeThrottle struct {
	mu        sync.Mutex
	throttled map[string]bool
	marked    []string
	signal    chan struct{}
}

func newFakeThrottle(throttled ...string) *fakeThrottle {
	m := make(map[string]bool, len(throttled))
	for _, a := range throttled {
		m[a] = true
	}
	return &fakeThrottle{throttled: m, signal: make(chan struct{}, 16)}
}

func (f *fakeThrottle) IsThrottled(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.throttled[email], nil
}

func (f *fakeThrottle) Mark(_ context.Context, email string) error {
	f.mu.Lock()
	f.marked = append(f.marked, email)
	f.mu.Unlock()
	f.signal <- struct{}{}
	return nil
}

func waitSignal(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestDispatcher_Delivers(t *testing.T) {
	sender := newRecordingSender()
	throttle := newFakeThrottle()
	d := NewDispatcher(2, sender, throttle, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	mail := ports.VerificationMail{To: "alice@example.com", Name: "Alice", Token: "tok"}
	if err := d.SendVerification(context.Background(), mail); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}

	waitSignal(t, sender.signal, "delivery")
	waitSignal(t, throttle.signal, "throttle mark")

	sender.mu.Lock()
	got := sender.delivered[0]
	sender.mu.Unlock()
	if got != mail {
		t.Fatalf("delivered %+v, want %+v", got, mail)
	}
	throttle.mu.Lock()
	marked := throttle.marked
	throttle.mu.Unlock()
	if len(marked) != 1 || marked[0] != "alice@example.com" {
		t.Fatalf("address not marked after delivery: %v", marked)
	}
}

func TestDispatcher_SkipsThrottledAddress(t *testing.T) {
	sender := newRecordingSender()
	throttle := newFakeThrottle("alice@example.com")
	d := NewDispatcher(1, sender, throttle, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// The throttled address is dropped, the other delivered. A single worker
	// processes in order, so the second delivery proves the first was skipped.
	_ = d.SendVerification(context.Background(), ports.VerificationMail{To: "alice@example.com", Token: "t1"})
	_ = d.SendVerification(context.Background(), ports.VerificationMail{To: "bob@example.com", Token: "t2"})

	waitSignal(t, sender.signal, "delivery")

	if sender.count() != 1 {
		t.Fatalf("expected 1 delivery, got %d", sender.count())
	}
	sender.mu.Lock()
	to := sender.delivered[0].To
	sender.mu.Unlock()
	if to != "bob@example.com" {
		t.Fatalf("wrong mail delivered: %s", to)
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, newRecordingSender(), newFakeThrottle(), zerolog.Nop())

	first := d.shardIndex("alice@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("alice@example.com"); got != first {
			t.Fatalf("shard index changed: %d then %d", first, got)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index %d out of range", first)
	}
}
