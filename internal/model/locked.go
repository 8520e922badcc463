package model

import (
	"sync"

	"bouncing-balls/internal/physics"
)

// Locked serialises access to a Model so one goroutine can advance it while others take
// snapshots. A snapshot always sees the state before or after a whole Advance call.
type Locked struct {
	mu sync.Mutex
	m  Model
}

// NewLocked wraps m. m must not be used directly afterwards.
func NewLocked(m Model) *Locked {
	return &Locked{m: m}
}

// Advance calls the wrapped model's Advance while holding the lock.
func (l *Locked) Advance(dt float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Advance(dt)
}

// Snapshot calls the wrapped model's Snapshot while holding the lock.
func (l *Locked) Snapshot() []physics.Circle {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Snapshot()
}

// Do runs fn with the wrapped model while holding the lock, for reads that need more than Snapshot
// (e.g. the kinetic energy of a *physics.Simulation).
func (l *Locked) Do(fn func(Model)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.m)
}
