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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/model"
)

func TestCheck_UnknownOriginIsNotAllowed(t *testing.T) {
	s := NewInMemoryPermissionStore()

	allowed, err := s.Check("https://dapp.example")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestGrant_StoresAllowedRecord(t *testing.T) {
	s := NewInMemoryPermissionStore()

	err := s.Grant(model.PermissionRequest{
		Origin:      "https://dapp.example",
		State:       model.StateRequested,
		FlowID:      "flow-1",
		RequestedAt: time.Now().Unix(),
	})
	require.NoError(t, err)

	allowed, err := s.Check("https://dapp.example")
	require.NoError(t, err)
	assert.True(t, allowed)

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Stored records are always allowed; the transient flow id does not
	// survive the grant.
	assert.Equal(t, model.StateAllowed, records[0].State)
	assert.Empty(t, records[0].FlowID)
}

func TestGrant_OverwritesExistingRecord(t *testing.T) {
	s := NewInMemoryPermissionStore()

	require.NoError(t, s.Grant(model.PermissionRequest{Origin: "https://dapp.example", DisplayTitle: "Old"}))
	require.NoError(t, s.Grant(model.PermissionRequest{Origin: "https://dapp.example", DisplayTitle: "New"}))

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "New", records[0].DisplayTitle)
}

func TestRevoke_RemovesRecord(t *testing.T) {
	s := NewInMemoryPermissionStore()

	require.NoError(t, s.Grant(model.PermissionRequest{Origin: "https://dapp.example"}))
	require.NoError(t, s.Revoke("https://dapp.example"))

	allowed, err := s.Check("https://dapp.example")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRevoke_AbsentOriginIsNoOp(t *testing.T) {
	s := NewInMemoryPermissionStore()
	assert.NoError(t, s.Revoke("https://unknown.example"))
}
