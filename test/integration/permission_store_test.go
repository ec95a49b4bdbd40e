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

package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/model"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/permission/store"
)

func newPostgresStore(t *testing.T) *store.PostgresPermissionStore {
	t.Helper()
	s, err := store.NewPostgresPermissionStoreWithProvider(&dsnProvider{dsn: testDSN})
	require.NoError(t, err)
	return s
}

func TestPostgresStore_GrantCheckRevokeCycle(t *testing.T) {
	s := newPostgresStore(t)
	origin := "https://cycle.example"

	allowed, err := s.Check(origin)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, s.Grant(model.PermissionRequest{
		Origin:       origin,
		DisplayTitle: "Cycle DApp",
		DisplayIcon:  "https://cycle.example/icon.png",
		State:        model.StateRequested,
		RequestedAt:  time.Now().Unix(),
	}))

	allowed, err = s.Check(origin)
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, s.Revoke(origin))

	allowed, err = s.Check(origin)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestPostgresStore_GrantIsUpsert(t *testing.T) {
	s := newPostgresStore(t)
	origin := "https://upsert.example"

	require.NoError(t, s.Grant(model.PermissionRequest{Origin: origin, DisplayTitle: "Old"}))
	require.NoError(t, s.Grant(model.PermissionRequest{Origin: origin, DisplayTitle: "New"}))

	records, err := s.List()
	require.NoError(t, err)

	var found *model.PermissionRequest
	for i := range records {
		if records[i].Origin == origin {
			found = &records[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "New", found.DisplayTitle)
	assert.Equal(t, model.StateAllowed, found.State)
}

func TestPostgresStore_RevokeAbsentOriginIsNoOp(t *testing.T) {
	s := newPostgresStore(t)
	assert.NoError(t, s.Revoke("https://never-granted.example"))
}

func TestPostgresStore_ListReturnsStoredFields(t *testing.T) {
	s := newPostgresStore(t)
	origin := "https://fields.example"
	requestedAt := time.Now().Unix()

	require.NoError(t, s.Grant(model.PermissionRequest{
		Origin:       origin,
		DisplayTitle: "Fields DApp",
		DisplayIcon:  "https://fields.example/icon.png",
		RequestedAt:  requestedAt,
	}))
	t.Cleanup(func() { _ = s.Revoke(origin) })

	records, err := s.List()
	require.NoError(t, err)

	var found *model.PermissionRequest
	for i := range records {
		if records[i].Origin == origin {
			found = &records[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Fields DApp", found.DisplayTitle)
	assert.Equal(t, "https://fields.example/icon.png", found.DisplayIcon)
	assert.Equal(t, requestedAt, found.RequestedAt)
}
