package inprocrpc

import "errors"

// Standard errors. All are surfaced synchronously from the operation that
// triggered them; this layer performs no retries and never swallows an error.
var (
	// ErrAlreadyStarted is returned by Start on an endpoint that is already
	// started or closed. The endpoint's state is not reverted.
	ErrAlreadyStarted = errors.New("inprocrpc: endpoint already started")

	// ErrNotConnected is returned by Send before Start has succeeded, or
	// after Close.
	ErrNotConnected = errors.New("inprocrpc: endpoint not connected")

	// ErrPeerUnavailable is returned when a send targets a session
	// identifier with no registry entry, when a server endpoint sends
	// before a client has completed the handshake, or when the handshake
	// reaches a server that is not started.
	ErrPeerUnavailable = errors.New("inprocrpc: peer unavailable")

	// ErrMissingPeerHandle is returned when a client endpoint is
	// constructed or started without a valid server endpoint handle.
	ErrMissingPeerHandle = errors.New("inprocrpc: missing server endpoint handle")

	// ErrLoopNotRunning is returned by Dispatch when the event loop backing
	// deferred delivery has terminated.
	ErrLoopNotRunning = errors.New("inprocrpc: event loop not running")
)
