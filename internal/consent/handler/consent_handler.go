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

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/consent/service"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/errors"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/security"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/utils"
)

// ConsentHandler exposes the consent-decision surface. Every endpoint is
// authenticated: decisions come from the trusted out-of-band actor, never
// from the requester channel.
type ConsentHandler struct {
	service service.ConsentServiceInterface
}

// NewConsentHandler creates a new instance of ConsentHandler.
func NewConsentHandler(consentService service.ConsentServiceInterface) *ConsentHandler {
	return &ConsentHandler{service: consentService}
}

// GetPendingRequests handles GET /consent/pending
func (h *ConsentHandler) GetPendingRequests(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnDecisionSurface(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, h.service.PendingRequests())
}

type decisionRequest struct {
	Origin   string `json:"origin"`
	Decision string `json:"decision"`
}

// PostDecision handles POST /consent/decisions
func (h *ConsentHandler) PostDecision(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnDecisionSurface(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	var decision decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.CONSENT_DECISION_BAD_REQUEST.Code,
			Message:     errors.CONSENT_DECISION_BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "consent decision"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}
	if decision.Origin == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.PERMISSION_ORIGIN_REQUIRED.Code,
			Message:     errors.PERMISSION_ORIGIN_REQUIRED.Message,
			Description: "Origin is required to settle a consent decision.",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	if err := h.service.Decide(decision.Origin, decision.Decision); err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"origin":   decision.Origin,
		"decision": decision.Decision,
	})
}
