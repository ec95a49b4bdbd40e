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

package model

// PermissionState is the lifecycle state of an origin's permission record.
type PermissionState string

const (
	StateRequested PermissionState = "requested"
	StateAllowed   PermissionState = "allowed"
	StateDenied    PermissionState = "denied"
)

// PermissionRequest is the permission record for a requesting origin. Origin
// (scheme+host) is the sole lookup key. StateAllowed is the only state that
// authorizes RPC dispatch; records are not versioned and re-requesting
// overwrites prior state.
type PermissionRequest struct {
	Origin       string          `json:"origin"`
	DisplayIcon  string          `json:"display_icon,omitempty"`
	DisplayTitle string          `json:"display_title,omitempty"`
	State        PermissionState `json:"state"`

	// FlowID identifies the consent flow that created this record while it is
	// pending. Empty once resolved.
	FlowID string `json:"flow_id,omitempty"`

	RequestedAt int64 `json:"requested_at,omitempty"`
}
