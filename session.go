package inprocrpc

import uuid "github.com/satori/go.uuid"

// NewSessionID mints a collision-resistant session identifier. Identifiers
// are opaque: they carry no semantic payload and are used only as registry
// lookup keys. Any process-wide unique string generator would do; random
// RFC 4122 version 4 identifiers keep the probability of collision
// negligible without coordination.
func NewSessionID() string {
	return uuid.NewV4().String()
}
