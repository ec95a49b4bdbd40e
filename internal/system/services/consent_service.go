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

package services

import (
	"fmt"
	"net/http"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/consent/handler"
	consentservice "github.com/HessamRisky-NEW/wallet-bridge/internal/consent/service"
)

// ConsentService handles routing for the consent-decision surface.
type ConsentService struct {
	handler *handler.ConsentHandler
}

// NewConsentService creates a new ConsentService and registers its routes.
func NewConsentService(mux *http.ServeMux, apiBasePath string, service consentservice.ConsentServiceInterface) *ConsentService {
	instance := &ConsentService{
		handler: handler.NewConsentHandler(service),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

// RegisterRoutes registers the consent decision routes.
func (s *ConsentService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("GET %s/consent/pending", apiBasePath), s.handler.GetPendingRequests)
	mux.HandleFunc(fmt.Sprintf("POST %s/consent/decisions", apiBasePath), s.handler.PostDecision)
}
