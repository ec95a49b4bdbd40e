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

package rpcprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errors2 "github.com/HessamRisky-NEW/wallet-bridge/internal/system/errors"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func newTestClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 2 * time.Second},
	}
}

func TestRouteSafeRPCRequest_ReturnsResult(t *testing.T) {
	var received rpcRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      received.ID,
			"result":  []string{"0xabc"},
		})
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).RouteSafeRPCRequest(context.Background(), "eth_accounts", nil)
	require.NoError(t, err)

	assert.Equal(t, "2.0", received.JSONRPC)
	assert.Equal(t, "eth_accounts", received.Method)
	assert.NotEmpty(t, received.ID)
	assert.NotNil(t, received.Params, "params are always present, possibly empty")
	assert.JSONEq(t, `["0xabc"]`, string(result))
}

func TestRouteSafeRPCRequest_NodeErrorComesBackAsRPCError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":-32601,"message":"method not found"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).RouteSafeRPCRequest(context.Background(), "eth_bogus", nil)
	require.Error(t, err)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32601, rpcErr.Code)
	assert.Equal(t, "method not found", rpcErr.Message)
}

func TestRouteSafeRPCRequest_TransportFailureIsServerError(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:1").RouteSafeRPCRequest(context.Background(), "eth_accounts", nil)
	require.Error(t, err)

	var serverErr *errors2.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, errors2.PROVIDER_DISPATCH.Code, serverErr.Code)
}
