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

package errors

const errorPrefix = "WBS-"

var (
	// Server error codes

	GRANT_PERMISSION = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while storing origin permission.",
	}

	REVOKE_PERMISSION = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while revoking origin permission.",
	}

	FETCH_PERMISSIONS = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while fetching origin permissions.",
	}

	CHECK_PERMISSION = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while checking origin permission.",
	}

	PROVIDER_DISPATCH = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while dispatching to the RPC provider.",
	}

	LAUNCH_CONSENT_WINDOW = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while launching the consent window.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while parsing token claims.",
	}

	// Client error codes

	UN_AUTHORIZED = ErrorMessage{
		Code:    errorPrefix + "10001",
		Message: "Unauthorized request.",
	}

	BRIDGE_MESSAGE_BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "10002",
		Message: "Invalid bridge message payload.",
	}

	MISSING_ORIGIN = ErrorMessage{
		Code:    errorPrefix + "10003",
		Message: "Missing requester origin.",
	}

	CONSENT_DECISION_BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "10004",
		Message: "Invalid consent decision payload.",
	}

	CONSENT_FLOW_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "10005",
		Message: "No pending consent flow for origin.",
	}

	PERMISSION_ORIGIN_REQUIRED = ErrorMessage{
		Code:    errorPrefix + "10006",
		Message: "Origin is required.",
	}
)
