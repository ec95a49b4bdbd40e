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

package dispatcher

import (
	"context"
	"encoding/json"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/rpcprovider"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/constants"
)

// DispatcherInterface forwards authorized method calls to the trusted provider.
type DispatcherInterface interface {
	Dispatch(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error)
}

// Dispatcher applies the single method-name rewrite rule and forwards
// everything else unchanged. Provider errors propagate untranslated.
type Dispatcher struct {
	provider rpcprovider.ProviderInterface
}

// NewDispatcher creates a dispatcher over the given provider.
func NewDispatcher(provider rpcprovider.ProviderInterface) *Dispatcher {
	return &Dispatcher{provider: provider}
}

// Dispatch forwards the call. By the time dispatch is reached permission is
// already established, so the connection-request method is rewritten to the
// read-only accounts query: the provider returns the already-authorized
// account list instead of re-triggering a connection flow.
func (d *Dispatcher) Dispatch(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error) {
	if method == constants.MethodRequestAccounts {
		method = constants.MethodAccounts
	}
	return d.provider.RouteSafeRPCRequest(ctx, method, params)
}
