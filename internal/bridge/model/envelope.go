/*
 * Copyright (c) 2026, the wallet-bridge project.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package model

import (
	"encoding/json"
	"errors"
)

// Validation errors for inbound envelopes.
var (
	ErrMissingID     = errors.New("bridge: missing envelope id")
	ErrMissingMethod = errors.New("bridge: missing method field")
)

// RPCCall is the method invocation carried inside a request envelope. Params
// are opaque to the bridge and forwarded in order.
type RPCCall struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// RequestEnvelope is an inbound message from a requester context. The id is
// caller-assigned and exists purely for response correlation; the bridge never
// interprets it.
type RequestEnvelope struct {
	ID      string  `json:"id"`
	Request RPCCall `json:"request"`
}

// Validate checks the boundary requirements for an inbound envelope.
func (e *RequestEnvelope) Validate() error {
	if e.ID == "" {
		return ErrMissingID
	}
	if e.Request.Method == "" {
		return ErrMissingMethod
	}
	return nil
}

// ResponseEnvelope is the reply to a request envelope. The id always equals
// the id of the envelope that produced it. Result carries either the provider
// result or a BridgeError; the bridge never faults across the channel.
type ResponseEnvelope struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
}

// BridgeError kinds. Carried as structured values in a response's result
// field, distinguishable from ordinary RPC results by the receiving side.
const (
	KindUserRejected   = "UserRejected"
	KindUnauthorized   = "Unauthorized"
	KindInvalidRequest = "InvalidRequest"
)

// BridgeError is a tagged, non-thrown failure value.
type BridgeError struct {
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
}

func (e *BridgeError) Error() string {
	return "bridge error: " + e.Kind
}

// ErrorResult marshals a BridgeError for use as a response result. The
// marshalling cannot fail for this shape.
func ErrorResult(kind, message string) json.RawMessage {
	raw, _ := json.Marshal(&BridgeError{Kind: kind, Message: message})
	return raw
}

// DecodeBridgeError reports whether a result value carries a BridgeError.
func DecodeBridgeError(result json.RawMessage) (*BridgeError, bool) {
	var be BridgeError
	if err := json.Unmarshal(result, &be); err != nil || be.Kind == "" {
		return nil, false
	}
	switch be.Kind {
	case KindUserRejected, KindUnauthorized, KindInvalidRequest:
		return &be, true
	}
	return nil, false
}
