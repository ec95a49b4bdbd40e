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

package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/bridge/dispatcher"
	bridgemodel "github.com/HessamRisky-NEW/wallet-bridge/internal/bridge/model"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/consent/launcher"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/consent/registry"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/events"
	permissionmodel "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/model"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/permission/service"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/rpcprovider"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/constants"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
)

// Router owns the per-message protocol state machine. The per-origin state is
// never stored explicitly: unauthenticated means no allowed record, awaiting
// consent means a registry flow exists, authenticated means the permission
// check passes.
type Router struct {
	permissions service.PermissionServiceInterface
	registry    *registry.Registry
	launcher    launcher.LauncherInterface
	dispatcher  dispatcher.DispatcherInterface
	notifier    *events.Notifier
}

// NewRouter wires the router to its collaborators.
func NewRouter(
	permissions service.PermissionServiceInterface,
	consentRegistry *registry.Registry,
	consentLauncher launcher.LauncherInterface,
	rpcDispatcher dispatcher.DispatcherInterface,
	notifier *events.Notifier,
) *Router {
	return &Router{
		permissions: permissions,
		registry:    consentRegistry,
		launcher:    consentLauncher,
		dispatcher:  rpcDispatcher,
		notifier:    notifier,
	}
}

// consentMetadata is the optional cosmetic payload a requester may attach to
// a connection request as its first parameter.
type consentMetadata struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// HandleMessage runs one inbound envelope through the state machine and
// returns the correlated response. Every outcome, success or failure, is
// carried in the response result; the router never faults toward the channel.
//
// ctx is honored at the consent suspension point. There is no default
// timeout: an undecided consent flow suspends the caller until ctx is done,
// and cancellation fails closed to UserRejected.
func (r *Router) HandleMessage(ctx context.Context, origin string, envelope bridgemodel.RequestEnvelope) bridgemodel.ResponseEnvelope {

	if err := envelope.Validate(); err != nil {
		return bridgemodel.ResponseEnvelope{
			ID:     envelope.ID,
			Result: bridgemodel.ErrorResult(bridgemodel.KindInvalidRequest, err.Error()),
		}
	}

	method := envelope.Request.Method
	params := envelope.Request.Params

	var result json.RawMessage
	switch {
	case r.permissions.CheckOrigin(origin):
		result = r.dispatchResult(ctx, method, params)

	case method == constants.MethodRequestAccounts:
		result = r.runConsentFlow(ctx, origin, envelope)

	default:
		// Only the connection request may trigger the consent flow; every
		// other unauthenticated method fails closed immediately.
		result = bridgemodel.ErrorResult(bridgemodel.KindUnauthorized, "origin is not connected")
	}

	return bridgemodel.ResponseEnvelope{ID: envelope.ID, Result: result}
}

// runConsentFlow registers a suspension for the origin, opens the consent
// surface for a newly created flow, and blocks until an external actor
// decides. The store is re-checked afterwards: a decision that did not leave
// an allowed record resumes as UserRejected.
func (r *Router) runConsentFlow(ctx context.Context, origin string, envelope bridgemodel.RequestEnvelope) json.RawMessage {

	request := permissionmodel.PermissionRequest{
		Origin:      origin,
		State:       permissionmodel.StateRequested,
		FlowID:      uuid.New().String(),
		RequestedAt: time.Now().Unix(),
	}
	if len(envelope.Request.Params) > 0 {
		var metadata consentMetadata
		if err := json.Unmarshal(envelope.Request.Params[0], &metadata); err == nil {
			request.DisplayTitle = metadata.Title
			request.DisplayIcon = metadata.Icon
		}
	}

	suspension, created := r.registry.Register(request)
	if created {
		r.notifier.NotifyRequestPermission(request)
		if _, err := r.launcher.Open(constants.ConnectFlowIdentifier); err != nil {
			log.GetLogger().Warn(fmt.Sprintf("Failed to open consent window for origin: %s", origin), log.Error(err))
		}
		log.GetLogger().Info(fmt.Sprintf("Awaiting consent decision for origin: %s", origin),
			log.String("flow_id", suspension.FlowID))
	}

	decision := suspension.Await(ctx)

	if !r.permissions.CheckOrigin(origin) {
		reason := decision.Reason
		if reason == "" {
			reason = "user rejected the connection request"
		}
		return bridgemodel.ErrorResult(bridgemodel.KindUserRejected, reason)
	}
	return r.dispatchResult(ctx, envelope.Request.Method, envelope.Request.Params)
}

// dispatchResult forwards the call and shapes the outcome for the result
// field. Provider JSON-RPC errors pass through untouched; transport failures
// surface as an internal JSON-RPC error object.
func (r *Router) dispatchResult(ctx context.Context, method string, params []json.RawMessage) json.RawMessage {

	result, err := r.dispatcher.Dispatch(ctx, method, params)
	if err != nil {
		var rpcErr *rpcprovider.RPCError
		if errors.As(err, &rpcErr) {
			raw, _ := json.Marshal(rpcErr)
			return raw
		}
		log.GetLogger().Error(fmt.Sprintf("Provider dispatch failed for method: %s", method), log.Error(err))
		raw, _ := json.Marshal(&rpcprovider.RPCError{Code: -32603, Message: "internal error"})
		return raw
	}
	if len(result) == 0 {
		return json.RawMessage("null")
	}
	return result
}
