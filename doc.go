// Package inprocrpc provides an in-process JSON-RPC transport driven by an
// [eventloop.Loop].
//
// The transport lets an RPC client and an RPC server exchange messages while
// running inside the same process, without a real network or byte stream.
// Embedding applications (and test suites) wire a client and server together
// directly, instead of routing through sockets, pipes, or standard streams.
//
// # Architecture
//
// A [Registry] is an explicit routing table from session identifier to a
// message-delivery callback, created via [NewRegistry] with a running event
// loop. Two endpoint roles register with it:
//
//   - [ServerEndpoint]: registers under its own identifier at construction
//     and learns its peer's (client's) identifier during the connect
//     handshake.
//   - [ClientEndpoint]: constructed with a direct handle to the server
//     endpoint it intends to connect to; [ClientEndpoint.Start] performs the
//     one-time handshake that establishes bidirectional addressability.
//
// Both roles satisfy the [Transport] contract (Start, Send, Close plus the
// on-message/on-close/on-error observers) expected by the owning RPC
// client/server collaborator.
//
// # Deferred Delivery
//
// [Registry.Dispatch] never invokes the target's handler on the caller's
// stack. The delivery is submitted to the event loop and runs on a later
// turn, so a receiver that synchronously calls back into the sender cannot
// observe a half-finished send. The loop's external queue is strictly FIFO,
// and lookup and enqueue happen atomically inside Dispatch, so messages
// dispatched to any single identifier are delivered in send order.
//
// # Message Isolation
//
// Messages are opaque cargo: the transport does not parse, validate, or
// mutate them. Because sender and receiver share one address space, an
// optional [Cloner] (see [WithCloner]) can isolate the delivered value from
// later mutation by the sender. The default is pass-through. The
// [jsonrpc] subpackage provides the request/response/notification envelope
// typically carried, along with a deep-copy cloner for it.
//
// # Thread Safety
//
// A [Registry] and both endpoint types are safe for concurrent use from
// multiple goroutines. Observer callbacks run on the event loop goroutine
// with no endpoint lock held.
package inprocrpc
