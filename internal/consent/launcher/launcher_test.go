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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func TestOpen_AnchorsPopupToTopRight(t *testing.T) {
	l := &PopupLauncher{displayWidth: 1920}

	descriptor, err := l.Open("connect")
	require.NoError(t, err)

	assert.Equal(t, 1560, descriptor.Left)
	assert.Equal(t, 0, descriptor.Top)
	assert.Equal(t, 360, descriptor.Width)
	assert.Equal(t, 620, descriptor.Height)
}

func TestOpen_NotifiesConfiguredEndpoint(t *testing.T) {
	var payload struct {
		Flow   string           `json:"flow"`
		Window WindowDescriptor `json:"window"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	l := &PopupLauncher{
		displayWidth: 1280,
		endpoint:     server.URL,
		httpClient:   &http.Client{Timeout: 2 * time.Second},
	}

	descriptor, err := l.Open("connect")
	require.NoError(t, err)

	assert.Equal(t, "connect", payload.Flow)
	assert.Equal(t, descriptor, payload.Window)
	assert.Equal(t, 920, payload.Window.Left)
}

func TestOpen_SwallowsNotificationFailure(t *testing.T) {
	l := &PopupLauncher{
		displayWidth: 1920,
		endpoint:     "http://127.0.0.1:1", // nothing listens here
		httpClient:   &http.Client{Timeout: 500 * time.Millisecond},
	}

	descriptor, err := l.Open("connect")
	require.NoError(t, err)
	assert.Equal(t, 1560, descriptor.Left)
}

func TestStaticLauncher_Geometry(t *testing.T) {
	l := &StaticLauncher{DisplayWidth: 1024}

	descriptor, err := l.Open("connect")
	require.NoError(t, err)
	assert.Equal(t, WindowDescriptor{Left: 664, Top: 0, Width: 360, Height: 620}, descriptor)
}
