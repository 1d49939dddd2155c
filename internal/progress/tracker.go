package progress

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Tracker owns the step cursor of one processing attempt.
type Tracker struct {
	attempt  int
	steps    []string
	interval time.Duration
	hub      *Hub

	mu       sync.Mutex
	cursor   int
	complete bool

	stop     chan struct{}
	stopOnce sync.Once
}

// NewTracker creates a tracker publishing to hub. A nil hub disables
// publishing.
func NewTracker(attempt int, steps []string, interval time.Duration, hub *Hub) *Tracker {
	return &Tracker{
		attempt:  attempt,
		steps:    slices.Clone(steps),
		interval: interval,
		hub:      hub,
		stop:     make(chan struct{}),
	}
}

// Run advances the cursor on every tick until ctx is done or Stop is called.
func (t *Tracker) Run(ctx context.Context) {
	t.mu.Lock()
	t.publishLocked()
	t.mu.Unlock()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.Advance()

		case <-t.stop:
			return

		case <-ctx.Done():
			return
		}
	}
}

// Advance moves the cursor one step forward and publishes it. The last step
// is never left this way. It reports whether the cursor moved.
func (t *Tracker) Advance() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.complete || t.cursor >= len(t.steps)-1 {
		return false
	}

	t.cursor++
	t.publishLocked()

	return true
}

// Complete marks every step as finished and stops the ticker.
func (t *Tracker) Complete() {
	t.mu.Lock()
	t.cursor = len(t.steps)
	t.complete = true
	t.publishLocked()
	t.mu.Unlock()

	t.Stop()
}

// Stop halts ticking. Safe to call more than once.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.snapshotLocked()
}

func (t *Tracker) snapshotLocked() Snapshot {
	return Snapshot{
		Attempt:  t.attempt,
		Steps:    t.steps,
		Cursor:   t.cursor,
		Complete: t.complete,
	}
}

// publishLocked sends the current snapshot while t.mu is held so that the
// hub sees snapshots in cursor order.
func (t *Tracker) publishLocked() {
	if t.hub != nil {
		t.hub.Publish(t.snapshotLocked())
	}
}
