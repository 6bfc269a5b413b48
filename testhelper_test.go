package inprocrpc_test

import (
	"context"
	"testing"
	"time"

	eventloop "github.com/joeycumines/go-eventloop"
	inprocrpc "github.com/joeycumines/go-inprocrpc"
)

const testTimeout = 5 * time.Second

// newTestLoop creates a new event loop, starts it, and registers cleanup.
func newTestLoop(t testing.TB) *eventloop.Loop {
	t.Helper()
	loop, err := eventloop.New()
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = loop.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return loop
}

// newTestRegistry creates an event-loop-driven registry. The loop is
// created and managed automatically.
func newTestRegistry(t testing.TB, opts ...inprocrpc.Option) *inprocrpc.Registry {
	t.Helper()
	loop := newTestLoop(t)
	opts = append([]inprocrpc.Option{inprocrpc.WithLoop(loop)}, opts...)
	return inprocrpc.NewRegistry(opts...)
}

// newTestPair constructs a connected server/client endpoint pair: both
// constructed, both started, handshake complete.
func newTestPair(t testing.TB, reg *inprocrpc.Registry) (*inprocrpc.ServerEndpoint, *inprocrpc.ClientEndpoint) {
	t.Helper()
	server, err := inprocrpc.NewServerEndpoint(reg)
	if err != nil {
		t.Fatal(err)
	}
	client, err := inprocrpc.NewClientEndpoint(reg, server)
	if err != nil {
		t.Fatal(err)
	}
	if err := server.Start(); err != nil {
		t.Fatal(err)
	}
	if err := client.Start(); err != nil {
		t.Fatal(err)
	}
	return server, client
}

// recv waits for a value on ch, failing the test after testTimeout.
func recv[T any](t testing.TB, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for delivery")
		panic("unreachable")
	}
}

// flushLoop submits a sentinel task and waits for it to run, guaranteeing
// every previously queued task has executed.
func flushLoop(t testing.TB, loop *eventloop.Loop) {
	t.Helper()
	done := make(chan struct{})
	if err := loop.Submit(func() { close(done) }); err != nil {
		t.Fatal(err)
	}
	recv(t, done)
}
