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

package store

import (
	"sync"

	model "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/model"
)

// PermissionStoreInterface is the durable mapping from origin to a permission
// record. Grant and Revoke are idempotent; revoking an absent origin is a
// no-op, not an error.
type PermissionStoreInterface interface {
	// Check reports whether a record exists for origin with state allowed.
	Check(origin string) (bool, error)
	// Grant inserts or overwrites the record for record.Origin with state allowed.
	Grant(record model.PermissionRequest) error
	// Revoke removes any stored record for origin.
	Revoke(origin string) error
	// List returns all stored (allowed) records.
	List() ([]model.PermissionRequest, error)
}

// InMemoryPermissionStore keeps permission records in a process-local map.
// The maps are owned by this struct; the only mutation paths are the
// interface methods.
type InMemoryPermissionStore struct {
	mu      sync.RWMutex
	origins map[string]model.PermissionRequest
}

// NewInMemoryPermissionStore creates an empty in-memory store.
func NewInMemoryPermissionStore() *InMemoryPermissionStore {
	return &InMemoryPermissionStore{
		origins: make(map[string]model.PermissionRequest),
	}
}

func (s *InMemoryPermissionStore) Check(origin string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.origins[origin]
	return ok && record.State == model.StateAllowed, nil
}

func (s *InMemoryPermissionStore) Grant(record model.PermissionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record.State = model.StateAllowed
	record.FlowID = ""
	s.origins[record.Origin] = record
	return nil
}

func (s *InMemoryPermissionStore) Revoke(origin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.origins, origin)
	return nil
}

func (s *InMemoryPermissionStore) List() ([]model.PermissionRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]model.PermissionRequest, 0, len(s.origins))
	for _, record := range s.origins {
		records = append(records, record)
	}
	return records, nil
}
