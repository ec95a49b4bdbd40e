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

	"github.com/HessamRisky-NEW/wallet-bridge/internal/bridge/model"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/bridge/router"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/constants"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/errors"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/utils"
)

// BridgeHandler terminates the requester channel. Each POST carries one
// request envelope and blocks until the matching response envelope is ready,
// which for consent flows means until the decision lands. Faults in the
// envelope surface as structured error results, never as non-200 responses,
// so the requester side sees exactly one reply per message.
type BridgeHandler struct {
	router *router.Router
}

// NewBridgeHandler creates a new instance of BridgeHandler.
func NewBridgeHandler(messageRouter *router.Router) *BridgeHandler {
	return &BridgeHandler{router: messageRouter}
}

// PostMessage handles POST /bridge/messages
func (h *BridgeHandler) PostMessage(w http.ResponseWriter, r *http.Request) {

	origin := r.Header.Get(constants.OriginHeader)
	if origin == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.MISSING_ORIGIN.Code,
			Message:     errors.MISSING_ORIGIN.Message,
			Description: "Header '" + constants.OriginHeader + "' is required.",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	var envelope model.RequestEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		// A payload that does not parse still gets a reply on the channel.
		response := model.ResponseEnvelope{
			ID:     envelope.ID,
			Result: model.ErrorResult(model.KindInvalidRequest, utils.HandleDecodeError(err, "bridge message")),
		}
		utils.WriteJSONResponse(w, http.StatusOK, response)
		return
	}

	response := h.router.HandleMessage(r.Context(), origin, envelope)
	utils.WriteJSONResponse(w, http.StatusOK, response)
}
