// Package jsonrpc defines the JSON-RPC 2.0 message envelope carried by the
// in-process transport.
//
// The transport itself treats messages as opaque cargo; this package is the
// payload contract between the RPC client and server collaborators that own
// the two endpoints. Because no bytes cross a real boundary, params and
// results are plain Go values rather than raw JSON; the envelope marshals
// to standard JSON-RPC 2.0 if a future transport variant needs to cross
// one.
package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Version is the JSON-RPC protocol version carried by every message.
const Version = "2.0"

// Standard error codes, per the JSON-RPC 2.0 specification.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Message is the request/response/notification envelope.
//
//   - Request: ID and Method set.
//   - Notification: Method set, ID absent.
//   - Response: ID set, exactly one of Result or Error set.
//
// The ID is a string, a number, or nil; it is matched by the owning RPC
// collaborator, never by the transport.
type Message struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id,omitempty"`
	Method  string `json:"method,omitempty"`
	Params  any    `json:"params,omitempty"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc: %d %s", e.Code, e.Message)
}

// NewRequest builds a request message.
func NewRequest(id any, method string, params any) *Message {
	return &Message{JSONRPC: Version, ID: id, Method: method, Params: params}
}

// NewNotification builds a notification message (a request without an ID,
// to which no response is expected).
func NewNotification(method string, params any) *Message {
	return &Message{JSONRPC: Version, Method: method, Params: params}
}

// NewResponse builds a successful response message.
func NewResponse(id any, result any) *Message {
	return &Message{JSONRPC: Version, ID: id, Result: result}
}

// NewErrorResponse builds an error response message.
func NewErrorResponse(id any, code int, message string) *Message {
	return &Message{JSONRPC: Version, ID: id, Error: &Error{Code: code, Message: message}}
}

// IsRequest reports whether m is a request (method and id present).
func (m *Message) IsRequest() bool {
	return m.Method != "" && m.ID != nil
}

// IsNotification reports whether m is a notification (method present, id
// absent).
func (m *Message) IsNotification() bool {
	return m.Method != "" && m.ID == nil
}

// IsResponse reports whether m is a response (no method, result or error
// present).
func (m *Message) IsResponse() bool {
	return m.Method == "" && (m.Result != nil || m.Error != nil)
}

// Validate checks the envelope's structural validity.
func (m *Message) Validate() error {
	if m == nil {
		return errors.New("jsonrpc: nil message")
	}
	if m.JSONRPC != Version {
		return fmt.Errorf("jsonrpc: version %q, want %q", m.JSONRPC, Version)
	}
	switch {
	case m.Method != "":
		if m.Result != nil || m.Error != nil {
			return errors.New("jsonrpc: request carries result or error")
		}
	case m.Result != nil && m.Error != nil:
		return errors.New("jsonrpc: response carries both result and error")
	case m.Result == nil && m.Error == nil:
		return errors.New("jsonrpc: message carries neither method, result, nor error")
	case m.ID == nil:
		return errors.New("jsonrpc: response without id")
	}
	return nil
}

// Clone returns a deep copy of m via a JSON round-trip. Numeric params and
// results come back as float64, per encoding/json.
func (m *Message) Clone() (*Message, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var out Message
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cloner isolates *Message values dispatched through the in-process
// transport, satisfying its Cloner interface. Non-envelope messages are
// rejected.
type Cloner struct{}

// Clone implements the transport's Cloner interface for *Message values.
func (Cloner) Clone(in any) (any, error) {
	m, ok := in.(*Message)
	if !ok {
		return nil, fmt.Errorf("jsonrpc: cannot clone message of type %T", in)
	}
	return m.Clone()
}
