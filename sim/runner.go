package sim

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type Stats struct {
	Ticks  int // Tick events applied.
	Boosts int // Boost events applied.
	Days   int // Completed day/night cycles.
}

// Runner owns the world and applies the events it receives, one at a time.
type Runner struct {
	Config Config

	mu    sync.Mutex
	world World
	stats Stats

	events   chan Event
	closedMu sync.RWMutex
	closed   bool

	// Messages is where the runner reports notable outcomes.
	// Never blocks the runner: when nobody consumes it, messages are discarded.
	Messages chan Message
}

func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new runner: %w", err)
	}
	return &Runner{
		Config:   cfg,
		world:    cfg.NewWorld(),
		events:   make(chan Event, cfg.EventQueueSize),
		Messages: make(chan Message, cfg.MessageQueueSize),
	}, nil
}

// Send queues ev without blocking.
// Returns false if the runner is closed or the queue is full.
func (r *Runner) Send(ev Event) bool {
	r.closedMu.RLock()
	defer r.closedMu.RUnlock()
	if r.closed {
		return false
	}
	select {
	case r.events <- ev:
		return true
	default:
		r.publish(NewMessage(MsgDropped, r.Snapshot(), fmt.Sprintf("Dropped %s event, queue full", ev)))
		return false
	}
}

// Close stops accepting events. Queued events can still be drained.
func (r *Runner) Close() {
	r.closedMu.Lock()
	defer r.closedMu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	close(r.events)
}

func (r *Runner) isClosed() bool {
	r.closedMu.RLock()
	defer r.closedMu.RUnlock()
	return r.closed
}

// Drain applies all the queued events and returns how many were applied.
func (r *Runner) Drain() int {
	n := 0
	for {
		select {
		case ev, ok := <-r.events:
			if !ok {
				return n
			}
			r.apply(ev)
			n++
		default:
			return n
		}
	}
}

// Run applies events as they come until ctx is done or the runner is closed.
func (r *Runner) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-r.events:
			if !ok {
				return nil
			}
			r.apply(ev)
		}
	}
}

// Tick sends a Tick event every TickInterval until ctx is done or the runner is closed.
func (r *Runner) Tick(ctx context.Context) error {
	ticker := time.NewTicker(r.Config.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !r.Send(Tick) && r.isClosed() {
				return nil
			}
		}
	}
}

func (r *Runner) Snapshot() World {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.world
}

func (r *Runner) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func (r *Runner) apply(ev Event) {
	r.mu.Lock()
	out := r.Config.Step(&r.world, ev)
	switch ev {
	case Tick:
		r.stats.Ticks++
	case Boost:
		r.stats.Boosts++
	}
	if out.Has(Dawn) {
		r.stats.Days++
	}
	w, days := r.world, r.stats.Days
	r.mu.Unlock()

	if out.Has(Boosted) {
		r.publish(NewMessage(MsgBoost, w, fmt.Sprintf("Boost at y=%.3f", w.BirdY)))
	}
	if out.Has(Dawn) {
		r.publish(NewMessage(MsgDawn, w, fmt.Sprintf("Day %d begins", days+1)))
	}
	if out.Has(Respawn) {
		r.publish(NewMessage(MsgRespawn, w, "Bird respawned on the right edge"))
	}
	if out.Has(Ground) {
		r.publish(NewMessage(MsgGround, w, "Bird hit the ground"))
	}
	if out.Has(Ceiling) {
		r.publish(NewMessage(MsgCeiling, w, "Bird hit the ceiling"))
	}
}

func (r *Runner) publish(msg Message) {
	select {
	case r.Messages <- msg:
	default:
	}
}
