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
	"sync"

	model "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/model"
)

// Decision is the outcome a suspended caller resumes with.
type Decision struct {
	Granted bool
	Reason  string
	Record  *model.PermissionRequest
}

// Suspension is the handle a caller awaits after registering a consent flow.
type Suspension struct {
	// FlowID identifies the consent flow this suspension belongs to. Waiters
	// that joined an existing flow share its id.
	FlowID string

	ch <-chan Decision
}

// Await blocks until the flow is decided or ctx is done. There is no default
// timeout: an undecided flow suspends its caller indefinitely unless the
// caller's context imposes a deadline. Cancellation fails closed to a
// rejection.
func (s *Suspension) Await(ctx context.Context) Decision {
	select {
	case decision := <-s.ch:
		return decision
	case <-ctx.Done():
		return Decision{Granted: false, Reason: "consent wait canceled"}
	}
}

type consentFlow struct {
	flowID  string
	request model.PermissionRequest
	waiters []chan Decision
}

// Registry is the transient mapping from origin to its one outstanding
// consent flow. The flow map is owned by the registry; the only mutation
// paths are Register, Resolve and Reject.
//
// A second Register for an origin with a live flow joins that flow instead of
// replacing it: the eventual decision fans out to every waiter, so no caller
// is ever orphaned, and at most one flow per origin exists at a time.
type Registry struct {
	mu    sync.Mutex
	flows map[string]*consentFlow
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		flows: make(map[string]*consentFlow),
	}
}

// Register creates a suspension point for request.Origin and returns the
// handle the caller awaits. The second return value reports whether a new
// flow was created; callers emit the lifecycle notification and open the
// consent window only for a new flow.
func (r *Registry) Register(request model.PermissionRequest) (*Suspension, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	waiter := make(chan Decision, 1)

	flow, exists := r.flows[request.Origin]
	if exists {
		flow.waiters = append(flow.waiters, waiter)
		return &Suspension{FlowID: flow.flowID, ch: waiter}, false
	}

	flow = &consentFlow{
		flowID:  request.FlowID,
		request: request,
		waiters: []chan Decision{waiter},
	}
	r.flows[request.Origin] = flow
	return &Suspension{FlowID: flow.flowID, ch: waiter}, true
}

// Resolve settles the flow for origin with a grant decision and removes the
// entry. Resolving an absent origin is a no-op.
func (r *Registry) Resolve(origin string, record model.PermissionRequest) bool {
	return r.settle(origin, Decision{Granted: true, Record: &record})
}

// Reject settles the flow for origin with a rejection and removes the entry.
// Rejecting an absent origin is a no-op.
func (r *Registry) Reject(origin, reason string) bool {
	return r.settle(origin, Decision{Granted: false, Reason: reason})
}

func (r *Registry) settle(origin string, decision Decision) bool {
	r.mu.Lock()
	flow, exists := r.flows[origin]
	if !exists {
		r.mu.Unlock()
		return false
	}
	delete(r.flows, origin)
	r.mu.Unlock()

	// Each waiter channel is buffered, so fan-out never blocks even if a
	// waiter already gave up on its context.
	for _, waiter := range flow.waiters {
		waiter <- decision
		close(waiter)
	}
	return true
}

// Get returns the permission request of the outstanding flow for origin.
func (r *Registry) Get(origin string) (model.PermissionRequest, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	flow, exists := r.flows[origin]
	if !exists {
		return model.PermissionRequest{}, false
	}
	return flow.request, true
}

// Has reports whether a flow is outstanding for origin.
func (r *Registry) Has(origin string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.flows[origin]
	return exists
}

// Pending returns the permission requests of all outstanding flows.
func (r *Registry) Pending() []model.PermissionRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	requests := make([]model.PermissionRequest, 0, len(r.flows))
	for _, flow := range r.flows {
		requests = append(requests, flow.request)
	}
	return requests
}
