package inprocrpc

import "sync"

// Transport is the minimal contract each endpoint exposes to its owning RPC
// client/server collaborator. Both [ServerEndpoint] and [ClientEndpoint]
// satisfy it.
type Transport interface {
	// Start transitions the endpoint from Created to Started. A second
	// call always fails with ErrAlreadyStarted.
	Start() error

	// Send routes message to the endpoint's peer through the registry.
	// The message is opaque cargo; it is not parsed, validated, or
	// mutated.
	Send(message any) error

	// Close unregisters the endpoint and fires the on-close observer.
	// It is safe to call multiple times; subsequent calls are no-ops.
	Close() error

	// SessionID returns the endpoint's own session identifier, fixed at
	// construction time.
	SessionID() string

	// SetOnMessage sets the observer invoked once per delivered message,
	// on the event loop goroutine. Attach it before Start to avoid
	// dropping early messages.
	SetOnMessage(fn func(message any))

	// SetOnClose sets the observer invoked exactly once, on the call that
	// actually transitions the endpoint to Closed.
	SetOnClose(fn func())

	// SetOnError sets the observer reserved for asynchronous transport
	// failures. The current implementation surfaces every error
	// synchronously from the operation that caused it and never invokes
	// this observer; it exists so the owning collaborator's wiring does
	// not change if dispatch is later made fallible asynchronously.
	SetOnError(fn func(err error))
}

// State is an endpoint lifecycle state. Endpoints move Created → Started →
// Closed; Closed is terminal, there is no restart.
type State int

const (
	// StateCreated is the initial state: constructed and registered, not
	// yet connected.
	StateCreated State = iota
	// StateStarted means Start succeeded; the endpoint may send and
	// receive.
	StateStarted
	// StateClosed is terminal: unregistered, on-close fired.
	StateClosed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarted:
		return "started"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// endpoint is the shared core of both endpoint roles: the immutable session
// identifier, the registry handle, the lifecycle state, and the observer
// callbacks. The mutex guards state, observers, and role-specific fields of
// the embedding type (the server's peer identifier).
type endpoint struct {
	registry  *Registry
	sessionID string
	mu        sync.Mutex
	state     State
	onMessage func(message any)
	onClose   func()
	onError   func(err error)
}

// SessionID returns the endpoint's own session identifier. It never changes
// after construction.
func (e *endpoint) SessionID() string {
	return e.sessionID
}

// State returns the endpoint's current lifecycle state.
func (e *endpoint) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// SetOnMessage sets the on-message observer. See [Transport.SetOnMessage].
func (e *endpoint) SetOnMessage(fn func(message any)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onMessage = fn
}

// SetOnClose sets the on-close observer. See [Transport.SetOnClose].
func (e *endpoint) SetOnClose(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onClose = fn
}

// SetOnError sets the on-error observer. See [Transport.SetOnError].
func (e *endpoint) SetOnError(fn func(err error)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onError = fn
}

// deliver is the endpoint's registry entry. It runs on the event loop
// goroutine. A message that arrives after the endpoint closed, or before an
// on-message observer was attached, is dropped: the dispatch-time contract
// was already honored, and deferred delivery makes the attach race benign
// as long as observers are attached before Start returns.
func (e *endpoint) deliver(message any) {
	e.mu.Lock()
	fn := e.onMessage
	closed := e.state == StateClosed
	e.mu.Unlock()
	if closed || fn == nil {
		return
	}
	fn(message)
}

// close transitions to Closed from any prior state, unregisters, and fires
// the on-close observer exactly once. Observers run with no lock held.
func (e *endpoint) close() error {
	e.mu.Lock()
	if e.state == StateClosed {
		e.mu.Unlock()
		return nil
	}
	e.state = StateClosed
	fn := e.onClose
	e.mu.Unlock()
	e.registry.Unregister(e.sessionID)
	if fn != nil {
		fn()
	}
	return nil
}
