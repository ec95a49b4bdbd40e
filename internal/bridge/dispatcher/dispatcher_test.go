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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/rpcprovider"
)

type recordingProvider struct {
	method string
	params []json.RawMessage
	result json.RawMessage
	err    error
}

func (p *recordingProvider) RouteSafeRPCRequest(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error) {
	p.method = method
	p.params = params
	return p.result, p.err
}

func TestDispatch_RewritesConnectionRequestToAccountsQuery(t *testing.T) {
	provider := &recordingProvider{result: json.RawMessage(`["0xabc"]`)}
	d := NewDispatcher(provider)

	result, err := d.Dispatch(context.Background(), "eth_requestAccounts", nil)
	require.NoError(t, err)
	assert.Equal(t, "eth_accounts", provider.method)
	assert.JSONEq(t, `["0xabc"]`, string(result))
}

func TestDispatch_ForwardsOtherMethodsUnchanged(t *testing.T) {
	provider := &recordingProvider{result: json.RawMessage(`"0x1"`)}
	d := NewDispatcher(provider)

	params := []json.RawMessage{json.RawMessage(`"latest"`)}
	_, err := d.Dispatch(context.Background(), "eth_blockNumber", params)
	require.NoError(t, err)
	assert.Equal(t, "eth_blockNumber", provider.method)
	assert.Equal(t, params, provider.params)
}

func TestDispatch_ProviderErrorPassesThroughUntranslated(t *testing.T) {
	rpcErr := &rpcprovider.RPCError{Code: -32601, Message: "method not found"}
	provider := &recordingProvider{err: rpcErr}
	d := NewDispatcher(provider)

	_, err := d.Dispatch(context.Background(), "eth_unknown", nil)
	require.Error(t, err)
	assert.Same(t, rpcErr, err)
}
