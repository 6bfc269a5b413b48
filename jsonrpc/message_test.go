package jsonrpc_test

import (
	"encoding/json"
	"testing"

	"github.com/joeycumines/go-inprocrpc/jsonrpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagePredicates(t *testing.T) {
	for name, tc := range map[string]struct {
		msg          *jsonrpc.Message
		request      bool
		notification bool
		response     bool
	}{
		"request":        {msg: jsonrpc.NewRequest(1, "ping", nil), request: true},
		"notification":   {msg: jsonrpc.NewNotification("ping", nil), notification: true},
		"response":       {msg: jsonrpc.NewResponse(1, "pong"), response: true},
		"error response": {msg: jsonrpc.NewErrorResponse(1, jsonrpc.CodeMethodNotFound, "no such method"), response: true},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.request, tc.msg.IsRequest())
			assert.Equal(t, tc.notification, tc.msg.IsNotification())
			assert.Equal(t, tc.response, tc.msg.IsResponse())
			assert.NoError(t, tc.msg.Validate())
		})
	}
}

func TestMessageValidate(t *testing.T) {
	for name, msg := range map[string]*jsonrpc.Message{
		"nil message":     nil,
		"missing version": {ID: 1, Method: "ping"},
		"request with result": {
			JSONRPC: jsonrpc.Version, ID: 1, Method: "ping", Result: "pong",
		},
		"response with result and error": {
			JSONRPC: jsonrpc.Version, ID: 1, Result: "pong",
			Error: &jsonrpc.Error{Code: jsonrpc.CodeInternalError, Message: "boom"},
		},
		"empty envelope": {JSONRPC: jsonrpc.Version},
		"response without id": {
			JSONRPC: jsonrpc.Version, Result: "pong",
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, msg.Validate())
		})
	}
}

func TestMessageMarshalShape(t *testing.T) {
	raw, err := json.Marshal(jsonrpc.NewRequest(1, "ping", map[string]any{"a": 1}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":1,"method":"ping","params":{"a":1}}`, string(raw))

	var m jsonrpc.Message
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.True(t, m.IsRequest())
	assert.Equal(t, "ping", m.Method)
}

func TestMessageClone(t *testing.T) {
	params := map[string]any{"value": "original"}
	msg := jsonrpc.NewRequest("abc", "set", params)

	cloned, err := msg.Clone()
	require.NoError(t, err)
	require.NotSame(t, msg, cloned)

	params["value"] = "mutated"
	msg.Method = "overwritten"
	assert.Equal(t, "set", cloned.Method)
	assert.Equal(t, "original", cloned.Params.(map[string]any)["value"])
}

func TestCloner(t *testing.T) {
	var cloner jsonrpc.Cloner

	out, err := cloner.Clone(jsonrpc.NewNotification("ping", nil))
	require.NoError(t, err)
	require.IsType(t, (*jsonrpc.Message)(nil), out)

	_, err = cloner.Clone("not an envelope")
	assert.Error(t, err)
}

func TestErrorError(t *testing.T) {
	err := &jsonrpc.Error{Code: jsonrpc.CodeInvalidParams, Message: "bad params"}
	assert.Equal(t, "jsonrpc: -32602 bad params", err.Error())
}
