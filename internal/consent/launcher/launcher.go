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

package launcher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/config"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/constants"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
)

// WindowDescriptor is the geometry of an opened consent surface.
type WindowDescriptor struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LauncherInterface opens a user-facing consent surface for a flow. The
// bridge invokes it once per new flow and never awaits its closure; the
// decision arrives independently through the registry.
type LauncherInterface interface {
	Open(flowIdentifier string) (WindowDescriptor, error)
}

// PopupLauncher positions a fixed-size popup anchored to the top-right of the
// configured display and, when an endpoint is configured, notifies the
// consent UI agent about the opened flow. Notification failures are logged
// and swallowed; the suspension is driven by the registry, not the window.
type PopupLauncher struct {
	displayWidth int
	endpoint     string
	httpClient   *http.Client
}

// NewPopupLauncher creates a launcher from the runtime configuration.
func NewPopupLauncher() *PopupLauncher {
	launcherConfig := config.GetBridgeRuntime().Config.Launcher
	return &PopupLauncher{
		displayWidth: launcherConfig.DisplayWidth,
		endpoint:     launcherConfig.Endpoint,
		httpClient:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Open computes the popup geometry and fires the UI notification.
func (l *PopupLauncher) Open(flowIdentifier string) (WindowDescriptor, error) {

	descriptor := WindowDescriptor{
		Left:   l.displayWidth - constants.PopupWidth,
		Top:    0,
		Width:  constants.PopupWidth,
		Height: constants.PopupHeight,
	}

	if l.endpoint == "" {
		return descriptor, nil
	}

	payload, err := json.Marshal(struct {
		Flow   string           `json:"flow"`
		Window WindowDescriptor `json:"window"`
	}{
		Flow:   flowIdentifier,
		Window: descriptor,
	})
	if err != nil {
		return descriptor, err
	}

	resp, err := l.httpClient.Post(l.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.GetLogger().Warn(fmt.Sprintf("Failed to notify consent UI for flow: %s", flowIdentifier), log.Error(err))
		return descriptor, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		log.GetLogger().Warn(fmt.Sprintf("Consent UI returned status %d for flow: %s", resp.StatusCode, flowIdentifier))
	}
	return descriptor, nil
}

// StaticLauncher returns a fixed descriptor without side effects. Used in
// tests and in deployments where the consent UI polls the pending list.
type StaticLauncher struct {
	DisplayWidth int
}

func (l *StaticLauncher) Open(flowIdentifier string) (WindowDescriptor, error) {
	return WindowDescriptor{
		Left:   l.DisplayWidth - constants.PopupWidth,
		Top:    0,
		Width:  constants.PopupWidth,
		Height: constants.PopupHeight,
	}, nil
}
