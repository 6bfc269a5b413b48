package inprocrpc

import (
	"fmt"
	"sync"

	"github.com/joeycumines/logiface"
)

// deliverFunc is a registry entry's message-delivery callback. It is always
// invoked on the event loop goroutine.
type deliverFunc func(message any)

// Registry is a routing table from session identifier to a message-delivery
// callback. It owns no endpoint lifecycle; it is purely a lookup/dispatch
// service. The hosting application constructs one (or one per test) and
// passes it to every endpoint constructor, so multiple isolated routing
// domains may coexist in one process.
//
// Create instances with [NewRegistry]. The zero value is not usable.
type Registry struct {
	loop   Loop
	cloner Cloner
	logger *logiface.Logger[logiface.Event]
	mu     sync.Mutex
	table  map[string]deliverFunc
}

// NewRegistry creates a new event-loop-driven routing registry.
//
// The loop must be provided via [WithLoop] and should be running before
// messages are dispatched. NewRegistry panics if any option fails
// validation (invalid options are programming errors).
func NewRegistry(opts ...Option) *Registry {
	cfg, err := resolveOptions(opts)
	if err != nil {
		panic(fmt.Sprintf("inprocrpc: %s", err))
	}
	return &Registry{
		loop:   cfg.loop,
		cloner: cfg.cloner,
		logger: cfg.logger,
		table:  make(map[string]deliverFunc),
	}
}

// Register inserts or overwrites the entry for id. Registering an
// identifier that is already present silently replaces the live
// subscriber; callers are expected to treat that as a programming error.
func (r *Registry) Register(id string, deliver func(message any)) {
	r.mu.Lock()
	r.table[id] = deliver
	r.mu.Unlock()
	r.logger.Debug().
		Str("session_id", id).
		Log("session registered")
}

// Unregister removes the entry for id. It is a no-op if the entry is
// absent, which supports idempotent endpoint close.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	delete(r.table, id)
	r.mu.Unlock()
	r.logger.Debug().
		Str("session_id", id).
		Log("session unregistered")
}

// Dispatch routes message to the endpoint registered under targetID.
//
// The lookup is synchronous: if targetID has no entry, Dispatch fails
// immediately with [ErrPeerUnavailable] and no side effect. Otherwise the
// delivery callback invocation is submitted to the event loop and runs on
// a later turn, after the caller's current stack completes. Messages
// dispatched to any single identifier are delivered in dispatch order.
func (r *Registry) Dispatch(targetID string, message any) error {
	if r.cloner != nil {
		var err error
		if message, err = r.cloner.Clone(message); err != nil {
			return fmt.Errorf("inprocrpc: clone message for %q: %w", targetID, err)
		}
	}
	r.mu.Lock()
	deliver, ok := r.table[targetID]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("inprocrpc: no endpoint registered for session %q: %w", targetID, ErrPeerUnavailable)
	}
	// Submitted under the table lock: lookup and enqueue are atomic with
	// respect to any other Dispatch, so the loop's FIFO external queue
	// preserves per-target send order even with concurrent senders.
	err := r.loop.Submit(func() { deliver(message) })
	r.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoopNotRunning, err)
	}
	r.logger.Debug().
		Str("target_id", targetID).
		Log("message dispatched")
	return nil
}

// Reset drops every entry. It exists for test isolation; a live subscriber
// removed by Reset simply stops receiving messages, and subsequent
// dispatches to it fail with [ErrPeerUnavailable].
func (r *Registry) Reset() {
	r.mu.Lock()
	clear(r.table)
	r.mu.Unlock()
	r.logger.Debug().Log("registry reset")
}

// Len reports the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.table)
}
