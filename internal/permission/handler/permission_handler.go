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
	"net/http"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/permission/service"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/errors"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/security"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/utils"
)

// PermissionHandler exposes the stored-permission management surface.
type PermissionHandler struct {
	service service.PermissionServiceInterface
}

// NewPermissionHandler creates a new instance of PermissionHandler.
func NewPermissionHandler(permissionService service.PermissionServiceInterface) *PermissionHandler {
	return &PermissionHandler{service: permissionService}
}

// ListPermissions handles GET /permissions
func (h *PermissionHandler) ListPermissions(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnDecisionSurface(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	records, err := h.service.ListPermissions()
	if err != nil {
		utils.HandleError(w, errors.NewServerError(errors.FETCH_PERMISSIONS, err))
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, records)
}

// RevokePermission handles DELETE /permissions?origin=...
func (h *PermissionHandler) RevokePermission(w http.ResponseWriter, r *http.Request) {

	if err := security.AuthnDecisionSurface(r); err != nil {
		utils.HandleError(w, err)
		return
	}

	origin := r.URL.Query().Get("origin")
	if origin == "" {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.PERMISSION_ORIGIN_REQUIRED.Code,
			Message:     errors.PERMISSION_ORIGIN_REQUIRED.Message,
			Description: "Query parameter 'origin' is required.",
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	if err := h.service.RevokePermission(origin); err != nil {
		utils.HandleError(w, errors.NewServerError(errors.REVOKE_PERMISSION, err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
