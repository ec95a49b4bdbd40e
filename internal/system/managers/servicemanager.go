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

package managers

import (
	"net/http"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/bridge/dispatcher"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/bridge/router"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/consent/launcher"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/consent/registry"
	consentservice "github.com/HessamRisky-NEW/wallet-bridge/internal/consent/service"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/events"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/permission/provider"
	permissionservice "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/service"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/rpcprovider"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux) ServiceManagerInterface {

	return &ServiceManager{
		mux: mux,
	}
}

// RegisterServices constructs the bridge collaborators and mounts every
// service on the multiplexer.
func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	permissionStore, err := provider.NewPermissionStoreProvider().GetPermissionStore()
	if err != nil {
		return err
	}

	permissions := permissionservice.NewPermissionService(permissionStore)
	consentRegistry := registry.NewRegistry()
	notifier := events.NewNotifier()
	popupLauncher := launcher.NewPopupLauncher()
	rpcDispatcher := dispatcher.NewDispatcher(rpcprovider.NewClient())

	messageRouter := router.NewRouter(permissions, consentRegistry, popupLauncher, rpcDispatcher, notifier)
	consent := consentservice.NewConsentService(consentRegistry, permissions)

	services.NewBridgeService(sm.mux, apiBasePath, messageRouter)
	services.NewConsentService(sm.mux, apiBasePath, consent)
	services.NewPermissionService(sm.mux, apiBasePath, permissions)
	services.NewHealthService(sm.mux)

	return nil
}
