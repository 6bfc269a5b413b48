package inprocrpc

import (
	"errors"

	"github.com/joeycumines/logiface"
)

// Loop is the interface required by inprocrpc for event loop integration.
// It provides methods for submitting tasks to the event loop for execution.
type Loop interface {
	// Submit submits a task to the external queue for execution on the loop.
	// Returns an error if the loop has been shut down.
	Submit(func()) error

	// SubmitInternal submits a task to the internal priority queue.
	// These tasks are processed before external tasks.
	// Returns an error if the loop has been shut down.
	SubmitInternal(func()) error
}

// registryOptions holds configuration for a [Registry] instance.
type registryOptions struct {
	loop   Loop
	cloner Cloner
	logger *logiface.Logger[logiface.Event]
}

// Option configures a [Registry] instance. Options are applied during
// registry construction.
type Option interface {
	applyOption(*registryOptions) error
}

// optionImpl implements [Option] via a closure.
type optionImpl struct {
	fn func(*registryOptions) error
}

func (o *optionImpl) applyOption(opts *registryOptions) error {
	return o.fn(opts)
}

// WithLoop configures the event loop for the registry.
// The loop must not be nil.
func WithLoop(loop Loop) Option {
	return &optionImpl{fn: func(opts *registryOptions) error {
		if loop == nil {
			return errors.New("inprocrpc: loop must not be nil")
		}
		opts.loop = loop
		return nil
	}}
}

// WithCloner configures the [Cloner] used to isolate dispatched messages
// from later mutation by the sender. If not set, messages are passed
// through unmodified (they are treated as opaque, immutable cargo).
func WithCloner(cloner Cloner) Option {
	return &optionImpl{fn: func(opts *registryOptions) error {
		opts.cloner = cloner
		return nil
	}}
}

// WithLogger configures an optional structured logger for the registry.
// Register, unregister, and dispatch events are logged at debug level.
// A nil logger is accepted and disables logging (the default).
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{fn: func(opts *registryOptions) error {
		opts.logger = logger
		return nil
	}}
}

// resolveOptions applies the given options to a default [registryOptions].
func resolveOptions(opts []Option) (*registryOptions, error) {
	cfg := &registryOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyOption(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.loop == nil {
		return nil, errors.New("inprocrpc: loop must be provided via WithLoop")
	}
	return cfg, nil
}

// endpointOptions holds configuration for an endpoint instance.
type endpointOptions struct {
	sessionID string
}

// EndpointOption configures an endpoint instance. Options are applied
// during endpoint construction.
type EndpointOption interface {
	applyEndpointOption(*endpointOptions) error
}

// endpointOptionImpl implements [EndpointOption] via a closure.
type endpointOptionImpl struct {
	fn func(*endpointOptions) error
}

func (o *endpointOptionImpl) applyEndpointOption(opts *endpointOptions) error {
	return o.fn(opts)
}

// WithSessionID supplies the endpoint's session identifier instead of
// minting one. The identifier must not be empty, and must be unique within
// the registry; registering a duplicate silently replaces the previous
// entry (a programming error, not a supported path).
func WithSessionID(id string) EndpointOption {
	return &endpointOptionImpl{fn: func(opts *endpointOptions) error {
		if id == "" {
			return errors.New("inprocrpc: session identifier must not be empty")
		}
		opts.sessionID = id
		return nil
	}}
}

// resolveEndpointOptions applies the given options to a default
// [endpointOptions].
func resolveEndpointOptions(opts []EndpointOption) (*endpointOptions, error) {
	cfg := &endpointOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.applyEndpointOption(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
