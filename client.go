package inprocrpc

import (
	"errors"
	"fmt"
)

// ClientEndpoint is the client-side transport role. It is constructed with
// a direct in-process handle to the server endpoint it intends to connect
// to; this is the asymmetry in the design. [ClientEndpoint.Start] performs
// the one-time handshake that tells the server this client's session
// identifier, after which both sides resolve each other through the
// registry alone.
//
// Create instances with [NewClientEndpoint]. The zero value is not usable.
type ClientEndpoint struct {
	endpoint
	server *ServerEndpoint
}

var _ Transport = (*ClientEndpoint)(nil)

// NewClientEndpoint creates a client endpoint bound to the given server
// endpoint and registers it with the registry. A nil server handle fails
// with [ErrMissingPeerHandle] before any side effect.
func NewClientEndpoint(registry *Registry, server *ServerEndpoint, opts ...EndpointOption) (*ClientEndpoint, error) {
	if registry == nil {
		return nil, errors.New("inprocrpc: registry must not be nil")
	}
	if server == nil {
		return nil, ErrMissingPeerHandle
	}
	cfg, err := resolveEndpointOptions(opts)
	if err != nil {
		return nil, err
	}
	id := cfg.sessionID
	if id == "" {
		id = NewSessionID()
	}
	c := &ClientEndpoint{
		endpoint: endpoint{
			registry:  registry,
			sessionID: id,
		},
		server: server,
	}
	registry.Register(id, c.deliver)
	return c, nil
}

// Start performs the connect handshake, informing the server endpoint of
// this client's session identifier, then marks the endpoint started. The
// server must already be started; otherwise Start fails with
// [ErrPeerUnavailable] and the client remains in its created state, with
// no side effect. A second call fails with [ErrAlreadyStarted].
func (c *ClientEndpoint) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateCreated {
		return fmt.Errorf("%w (state %s)", ErrAlreadyStarted, c.state)
	}
	if c.server == nil {
		return ErrMissingPeerHandle
	}
	if err := c.server.acceptPeer(c.sessionID); err != nil {
		return err
	}
	c.state = StateStarted
	return nil
}

// Send dispatches message to the server endpoint through the registry. It
// fails with [ErrNotConnected] unless the endpoint is started.
func (c *ClientEndpoint) Send(message any) error {
	c.mu.Lock()
	if c.state != StateStarted {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("%w (state %s)", ErrNotConnected, state)
	}
	target := c.server.sessionID
	c.mu.Unlock()
	return c.registry.Dispatch(target, message)
}

// Close unregisters the endpoint, marks it closed, and fires the on-close
// observer exactly once. Safe to call multiple times.
func (c *ClientEndpoint) Close() error {
	return c.close()
}
