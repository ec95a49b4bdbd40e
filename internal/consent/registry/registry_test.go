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

package registry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/model"
)

func newRequest(origin, flowID string) model.PermissionRequest {
	return model.PermissionRequest{
		Origin:      origin,
		State:       model.StateRequested,
		FlowID:      flowID,
		RequestedAt: time.Now().Unix(),
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestRegister_NewFlow(t *testing.T) {
	r := NewRegistry()

	suspension, created := r.Register(newRequest("https://dapp.example", "flow-1"))
	require.NotNil(t, suspension)
	assert.True(t, created)
	assert.Equal(t, "flow-1", suspension.FlowID)
	assert.True(t, r.Has("https://dapp.example"))
}

func TestRegister_SecondCallJoinsExistingFlow(t *testing.T) {
	r := NewRegistry()

	first, created := r.Register(newRequest("https://dapp.example", "flow-1"))
	require.True(t, created)

	// A repeat connect while the flow is live must not replace it.
	second, created := r.Register(newRequest("https://dapp.example", "flow-2"))
	assert.False(t, created)
	assert.Equal(t, first.FlowID, second.FlowID)

	requests := r.Pending()
	require.Len(t, requests, 1)
	assert.Equal(t, "flow-1", requests[0].FlowID)
}

func TestRegister_DistinctOriginsGetDistinctFlows(t *testing.T) {
	r := NewRegistry()

	_, createdA := r.Register(newRequest("https://a.example", "flow-a"))
	_, createdB := r.Register(newRequest("https://b.example", "flow-b"))

	assert.True(t, createdA)
	assert.True(t, createdB)
	assert.Len(t, r.Pending(), 2)
}

// ---------------------------------------------------------------------------
// Resolve / Reject
// ---------------------------------------------------------------------------

func TestResolve_ResumesWaiterWithGrant(t *testing.T) {
	r := NewRegistry()
	request := newRequest("https://dapp.example", "flow-1")

	suspension, _ := r.Register(request)

	granted := request
	granted.State = model.StateAllowed
	require.True(t, r.Resolve("https://dapp.example", granted))

	decision := suspension.Await(context.Background())
	assert.True(t, decision.Granted)
	require.NotNil(t, decision.Record)
	assert.Equal(t, model.StateAllowed, decision.Record.State)
	assert.False(t, r.Has("https://dapp.example"))
}

func TestReject_ResumesWaiterWithReason(t *testing.T) {
	r := NewRegistry()

	suspension, _ := r.Register(newRequest("https://dapp.example", "flow-1"))
	require.True(t, r.Reject("https://dapp.example", "user denied the connection request"))

	decision := suspension.Await(context.Background())
	assert.False(t, decision.Granted)
	assert.Equal(t, "user denied the connection request", decision.Reason)
	assert.False(t, r.Has("https://dapp.example"))
}

func TestResolve_FansOutToAllWaiters(t *testing.T) {
	r := NewRegistry()
	request := newRequest("https://dapp.example", "flow-1")

	first, _ := r.Register(request)
	second, _ := r.Register(newRequest("https://dapp.example", "flow-2"))

	require.True(t, r.Resolve("https://dapp.example", request))

	assert.True(t, first.Await(context.Background()).Granted)
	assert.True(t, second.Await(context.Background()).Granted)
}

func TestSettle_AbsentOriginIsNoOp(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Resolve("https://unknown.example", newRequest("https://unknown.example", "flow-x")))
	assert.False(t, r.Reject("https://unknown.example", "nothing pending"))
}

func TestSettle_SecondDecisionIsNoOp(t *testing.T) {
	r := NewRegistry()
	request := newRequest("https://dapp.example", "flow-1")

	_, _ = r.Register(request)
	require.True(t, r.Resolve("https://dapp.example", request))

	// The flow is gone once settled; a late decision finds nothing.
	assert.False(t, r.Reject("https://dapp.example", "too late"))
}

// ---------------------------------------------------------------------------
// Await
// ---------------------------------------------------------------------------

func TestAwait_ContextCancellationFailsClosed(t *testing.T) {
	r := NewRegistry()

	suspension, _ := r.Register(newRequest("https://dapp.example", "flow-1"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	decision := suspension.Await(ctx)
	assert.False(t, decision.Granted)
	assert.Equal(t, "consent wait canceled", decision.Reason)
}

func TestAwait_DecisionAfterWaiterGaveUpDoesNotBlock(t *testing.T) {
	r := NewRegistry()

	_, _ = r.Register(newRequest("https://dapp.example", "flow-1"))

	done := make(chan struct{})
	go func() {
		// The waiter channel is buffered, so settling with nobody reading
		// must return immediately.
		r.Reject("https://dapp.example", "user denied the connection request")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("settle blocked on an abandoned waiter")
	}
}

// ---------------------------------------------------------------------------
// Get / Pending
// ---------------------------------------------------------------------------

func TestGet_ReturnsOutstandingRequest(t *testing.T) {
	r := NewRegistry()
	request := newRequest("https://dapp.example", "flow-1")
	request.DisplayTitle = "Example DApp"

	_, _ = r.Register(request)

	stored, ok := r.Get("https://dapp.example")
	require.True(t, ok)
	assert.Equal(t, "Example DApp", stored.DisplayTitle)

	_, ok = r.Get("https://unknown.example")
	assert.False(t, ok)
}
