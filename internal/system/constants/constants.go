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

package constants

// ApiBasePath is the base path all bridge HTTP services are mounted under.
const ApiBasePath = "/wallet-bridge/v1"

// RPC method names at the bridge boundary.
const (
	// MethodRequestAccounts is the privileged connection-request method. It is
	// the only method an unauthenticated origin may use to start a consent flow.
	MethodRequestAccounts = "eth_requestAccounts"

	// MethodAccounts is the read-only accounts-query method the connection
	// request is rewritten to once permission is established.
	MethodAccounts = "eth_accounts"
)

// ConnectFlowIdentifier names the consent flow opened for connection requests.
const ConnectFlowIdentifier = "connect"

// OriginHeader carries the requester origin. It is set by the host channel and
// trusted as-is; the bridge has no independent means to verify it.
const OriginHeader = "X-Bridge-Origin"

// Consent popup geometry, fixed size anchored to the display's top-right.
const (
	PopupWidth  = 360
	PopupHeight = 620
)

// Persistent store backends.
const (
	StoreTypeMemory   = "memory"
	StoreTypePostgres = "postgres"
	StoreTypeMongo    = "mongo"
)

// DefaultNotificationBuffer is the subscriber channel depth for lifecycle
// notifications.
const DefaultNotificationBuffer = 16
