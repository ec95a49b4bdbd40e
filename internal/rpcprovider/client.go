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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/config"
	errors2 "github.com/HessamRisky-NEW/wallet-bridge/internal/system/errors"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
)

// RPCError is a JSON-RPC error object returned by the trusted provider. It
// passes through the bridge untouched in shape and content.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// ProviderInterface is the trusted internal RPC execution entry point.
type ProviderInterface interface {
	RouteSafeRPCRequest(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error)
}

type rpcRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      string            `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// Client executes methods against the configured provider node over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a provider client from the runtime configuration.
func NewClient() *Client {
	providerConfig := config.GetBridgeRuntime().Config.Provider
	log.GetLogger().Info("Creating RPC provider client with endpoint: " + providerConfig.Endpoint)
	return &Client{
		endpoint: providerConfig.Endpoint,
		httpClient: &http.Client{
			Timeout: time.Duration(providerConfig.TimeoutSeconds) * time.Second,
		},
	}
}

// RouteSafeRPCRequest forwards an authorized method call and returns the raw
// result. A JSON-RPC error object from the node comes back as *RPCError so
// callers can pass it through to the requester unchanged.
func (c *Client) RouteSafeRPCRequest(ctx context.Context, method string, params []json.RawMessage) (json.RawMessage, error) {

	if params == nil {
		params = []json.RawMessage{}
	}
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      uuid.New().String(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, errors2.NewServerError(errors2.PROVIDER_DISPATCH, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors2.NewServerError(errors2.PROVIDER_DISPATCH, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors2.NewServerError(errors2.PROVIDER_DISPATCH, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors2.NewServerError(errors2.PROVIDER_DISPATCH, err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, errors2.NewServerError(errors2.PROVIDER_DISPATCH, err)
	}
	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}
	return rpcResp.Result, nil
}
