package inprocrpc

import (
	"errors"
	"fmt"
)

// ServerEndpoint is the server-side transport role. It registers itself in
// the registry at construction and learns its peer's (client's) session
// identifier during the connect handshake; the server never holds a direct
// reference to the client, only vice versa.
//
// Create instances with [NewServerEndpoint]. The zero value is not usable.
type ServerEndpoint struct {
	endpoint
	peerID string
}

var _ Transport = (*ServerEndpoint)(nil)

// NewServerEndpoint creates a server endpoint and registers it with the
// registry. The session identifier may be supplied via [WithSessionID];
// otherwise one is minted.
func NewServerEndpoint(registry *Registry, opts ...EndpointOption) (*ServerEndpoint, error) {
	if registry == nil {
		return nil, errors.New("inprocrpc: registry must not be nil")
	}
	cfg, err := resolveEndpointOptions(opts)
	if err != nil {
		return nil, err
	}
	id := cfg.sessionID
	if id == "" {
		id = NewSessionID()
	}
	s := &ServerEndpoint{endpoint: endpoint{
		registry:  registry,
		sessionID: id,
	}}
	registry.Register(id, s.deliver)
	return s, nil
}

// Start marks the endpoint started. It does not require a peer: the peer is
// attached afterward, when a client endpoint performs its connect
// handshake. Starting an already started or closed endpoint fails with
// [ErrAlreadyStarted].
func (s *ServerEndpoint) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCreated {
		return fmt.Errorf("%w (state %s)", ErrAlreadyStarted, s.state)
	}
	s.state = StateStarted
	return nil
}

// acceptPeer records the client's session identifier as this server's send
// target. Invoked by [ClientEndpoint.Start]; the server must already be
// started, so that a handshake against an unstarted (or closed) server
// fails rather than leaving the client talking to a peer that never
// accepted it.
func (s *ServerEndpoint) acceptPeer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateStarted {
		return fmt.Errorf("inprocrpc: server endpoint %s is %s, not started: %w", s.sessionID, s.state, ErrPeerUnavailable)
	}
	s.peerID = id
	return nil
}

// Peer returns the session identifier recorded by the connect handshake,
// or the empty string if no client has connected yet.
func (s *ServerEndpoint) Peer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peerID
}

// Send dispatches message to the connected client through the registry.
// It fails with [ErrNotConnected] unless the endpoint is started, and with
// [ErrPeerUnavailable] if no client has completed the handshake.
func (s *ServerEndpoint) Send(message any) error {
	s.mu.Lock()
	if s.state != StateStarted {
		state := s.state
		s.mu.Unlock()
		return fmt.Errorf("%w (state %s)", ErrNotConnected, state)
	}
	peer := s.peerID
	s.mu.Unlock()
	if peer == "" {
		return fmt.Errorf("inprocrpc: no client has connected: %w", ErrPeerUnavailable)
	}
	return s.registry.Dispatch(peer, message)
}

// Close unregisters the endpoint, marks it closed, and fires the on-close
// observer exactly once. Closing an endpoint that was never started is
// still effective (it must unregister); only repeat calls are no-ops.
func (s *ServerEndpoint) Close() error {
	return s.close()
}
