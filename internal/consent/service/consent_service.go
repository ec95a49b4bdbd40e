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
	"net/http"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/consent/registry"
	model "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/model"
	permissionservice "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/service"
	errors2 "github.com/HessamRisky-NEW/wallet-bridge/internal/system/errors"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
)

// Decision values accepted on the consent-decision surface.
const (
	DecisionApprove = "approve"
	DecisionDeny    = "deny"
)

// ConsentServiceInterface is the surface the consent-decision actor drives.
type ConsentServiceInterface interface {
	PendingRequests() []model.PermissionRequest
	Decide(origin, decision string) error
}

// ConsentService settles pending consent flows against the permission store
// and the registry. Approving grants the record first and then resumes the
// suspended caller, so the router's re-check observes the allowed state.
type ConsentService struct {
	registry    *registry.Registry
	permissions permissionservice.PermissionServiceInterface
}

// NewConsentService creates a consent service over the registry and the
// permission service.
func NewConsentService(consentRegistry *registry.Registry, permissions permissionservice.PermissionServiceInterface) *ConsentService {
	return &ConsentService{
		registry:    consentRegistry,
		permissions: permissions,
	}
}

// PendingRequests returns the permission requests awaiting a decision.
func (s *ConsentService) PendingRequests() []model.PermissionRequest {
	return s.registry.Pending()
}

// Decide settles the pending flow for origin. Deciding an origin with no
// pending flow reports not-found and changes no state.
func (s *ConsentService) Decide(origin, decision string) error {

	logger := log.GetLogger()

	switch decision {
	case DecisionApprove:
		request, ok := s.registry.Get(origin)
		if !ok {
			return flowNotFoundError(origin)
		}
		request.State = model.StateAllowed
		if err := s.permissions.GrantPermission(request); err != nil {
			return err
		}
		s.registry.Resolve(origin, request)
		logger.Info(fmt.Sprintf("Consent approved for origin: %s", origin))
		return nil

	case DecisionDeny:
		if !s.registry.Reject(origin, "user denied the connection request") {
			return flowNotFoundError(origin)
		}
		logger.Info(fmt.Sprintf("Consent denied for origin: %s", origin))
		return nil

	default:
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.CONSENT_DECISION_BAD_REQUEST.Code,
			Message:     errors2.CONSENT_DECISION_BAD_REQUEST.Message,
			Description: fmt.Sprintf("Unknown decision: %s", decision),
		}, http.StatusBadRequest)
	}
}

func flowNotFoundError(origin string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.CONSENT_FLOW_NOT_FOUND.Code,
		Message:     errors2.CONSENT_FLOW_NOT_FOUND.Message,
		Description: fmt.Sprintf("No pending consent flow for origin: %s", origin),
	}, http.StatusNotFound)
}
