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

	"github.com/HessamRisky-NEW/wallet-bridge/internal/permission/handler"
	permissionservice "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/service"
)

// PermissionService handles routing for the stored-permission surface.
type PermissionService struct {
	handler *handler.PermissionHandler
}

// NewPermissionService creates a new PermissionService and registers its routes.
func NewPermissionService(mux *http.ServeMux, apiBasePath string, service permissionservice.PermissionServiceInterface) *PermissionService {
	instance := &PermissionService{
		handler: handler.NewPermissionHandler(service),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

// RegisterRoutes registers the permission management routes.
func (s *PermissionService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("GET %s/permissions", apiBasePath), s.handler.ListPermissions)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/permissions", apiBasePath), s.handler.RevokePermission)
}
