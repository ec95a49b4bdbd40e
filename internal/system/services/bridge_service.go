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

package services

import (
	"fmt"
	"net/http"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/bridge/handler"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/bridge/router"
)

// BridgeService handles routing for the requester message channel.
type BridgeService struct {
	handler *handler.BridgeHandler
}

// NewBridgeService creates a new BridgeService and registers its routes.
func NewBridgeService(mux *http.ServeMux, apiBasePath string, messageRouter *router.Router) *BridgeService {
	instance := &BridgeService{
		handler: handler.NewBridgeHandler(messageRouter),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

// RegisterRoutes registers the bridge message routes.
func (s *BridgeService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("POST %s/bridge/messages", apiBasePath), s.handler.PostMessage)
}
