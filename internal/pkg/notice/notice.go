// Package notice holds the transient notification shown to the form user.
// A notice stays visible for a fixed TTL; showing a new one replaces the
// current notice and cancels its pending auto-clear.
package notice

import (
	"sync"
	"time"

	"rodizio-reservas/internal/pkg/clock"
)

const DefaultTTL = 3 * time.Second

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Notice struct {
	Message   string
	Kind      Kind
	ShownAt   time.Time
	ExpiresAt time.Time
}

type Notifier struct {
	mu      sync.Mutex
	clock   clock.Clock
	ttl     time.Duration
	current *Notice
	timer   clock.Timer
	// seq guards against a stale timer clearing a newer notice
	seq uint64
}

func NewNotifier(c clock.Clock, ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{clock: c, ttl: ttl}
}

func (n *Notifier) Show(message string, kind Kind) Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}

	now := n.clock.Now()
	shown := Notice{
		Message:   message,
		Kind:      kind,
		ShownAt:   now,
		ExpiresAt: now.Add(n.ttl),
	}
	n.current = &shown
	n.seq++
	seq := n.seq
	n.timer = n.clock.AfterFunc(n.ttl, func() { n.clear(seq) })

	return shown
}

func (n *Notifier) Success(message string) Notice {
	return n.Show(message, KindSuccess)
}

func (n *Notifier) Error(message string) Notice {
	return n.Show(message, KindError)
}

// Current returns the visible notice, if any
func (n *Notifier) Current() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notice{}, false
	}
	return *n.current, true
}

func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}

func (n *Notifier) clear(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if seq != n.seq {
		return
	}
	n.current = nil
	n.timer = nil
}
