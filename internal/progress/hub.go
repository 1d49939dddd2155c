package progress

import "sync"

// Hub fans snapshots out to subscribers. Slow subscribers only ever see the
// latest snapshot.
type Hub struct {
	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	last   *Snapshot
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

type Subscription struct {
	hub  *Hub
	ch   chan Snapshot
	once sync.Once
}

// C is closed when the subscription is canceled or the hub is closed.
func (s *Subscription) C() <-chan Snapshot {
	return s.ch
}

func (s *Subscription) Cancel() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()

	s.close()
}

func (s *Subscription) close() {
	s.once.Do(func() {
		delete(s.hub.subs, s)
		close(s.ch)
	})
}

// Subscribe registers a subscriber. The last published snapshot, if any, is
// delivered immediately.
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &Subscription{hub: h, ch: make(chan Snapshot, 1)}
	if h.closed {
		sub.close()
		return sub
	}

	h.subs[sub] = struct{}{}
	if h.last != nil {
		sub.ch <- *h.last
	}

	return sub
}

func (h *Hub) Publish(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	h.last = &s
	for sub := range h.subs {
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- s
	}
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for sub := range h.subs {
		sub.close()
	}
}
