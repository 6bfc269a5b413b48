package inprocrpc

// Cloner is used to isolate messages between client and server within the
// in-process transport. Because both sides share the same address space, a
// sender that mutates a message after Send would otherwise race with the
// deferred delivery of that same value.
type Cloner interface {
	// Clone creates a deep copy of the given message.
	Clone(any) (any, error)
}

// CloneFunc creates a Cloner from a clone function.
func CloneFunc(fn func(any) (any, error)) Cloner {
	return funcCloner{fn: fn}
}

type funcCloner struct {
	fn func(any) (any, error)
}

func (c funcCloner) Clone(in any) (any, error) {
	return c.fn(in)
}
