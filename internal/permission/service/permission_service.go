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

package service

import (
	"fmt"

	model "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/model"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/permission/store"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
)

// PermissionServiceInterface is the permission check/grant/revoke surface the
// router and the decision API operate through.
type PermissionServiceInterface interface {
	CheckOrigin(origin string) bool
	GrantPermission(record model.PermissionRequest) error
	RevokePermission(origin string) error
	ListPermissions() ([]model.PermissionRequest, error)
}

// PermissionService is the default implementation over a permission store.
type PermissionService struct {
	store store.PermissionStoreInterface
}

// NewPermissionService creates a service over the given store.
func NewPermissionService(store store.PermissionStoreInterface) *PermissionService {
	return &PermissionService{store: store}
}

// CheckOrigin reports whether origin currently holds an allowed record. Store
// failures fail closed: an origin whose record cannot be read is treated as
// unauthorized.
func (s *PermissionService) CheckOrigin(origin string) bool {
	allowed, err := s.store.Check(origin)
	if err != nil {
		log.GetLogger().Error(fmt.Sprintf("Permission check failed for origin: %s", origin), log.Error(err))
		return false
	}
	return allowed
}

// GrantPermission stores an allowed record for the origin. Idempotent.
func (s *PermissionService) GrantPermission(record model.PermissionRequest) error {
	return s.store.Grant(record)
}

// RevokePermission removes any record for the origin. Idempotent.
func (s *PermissionService) RevokePermission(origin string) error {
	return s.store.Revoke(origin)
}

// ListPermissions returns all stored records.
func (s *PermissionService) ListPermissions() ([]model.PermissionRequest, error) {
	return s.store.List()
}
