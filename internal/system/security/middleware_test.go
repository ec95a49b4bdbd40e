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

package security

import (
	"encoding/base64"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/config"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	config.OverrideBridgeRuntime(config.Config{
		Auth: config.AuthConfig{
			AdminUsername: "admin",
			AdminPassword: "secret",
			JWTSecret:     testSecret,
			JWTAudience:   "wallet-bridge",
		},
	})
	os.Exit(m.Run())
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func signedToken(t *testing.T, secret, audience string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "consent-ui",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	if audience != "" {
		claims["aud"] = audience
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthnDecisionSurface_ValidBasicCredentials(t *testing.T) {
	r := httptest.NewRequest("GET", "/consent/pending", nil)
	r.Header.Set("Authorization", basicAuth("admin", "secret"))

	assert.NoError(t, AuthnDecisionSurface(r))
}

func TestAuthnDecisionSurface_WrongBasicCredentials(t *testing.T) {
	r := httptest.NewRequest("GET", "/consent/pending", nil)
	r.Header.Set("Authorization", basicAuth("admin", "wrong"))

	assert.Error(t, AuthnDecisionSurface(r))
}

func TestAuthnDecisionSurface_ValidBearerToken(t *testing.T) {
	r := httptest.NewRequest("GET", "/consent/pending", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, "wallet-bridge"))

	assert.NoError(t, AuthnDecisionSurface(r))
}

func TestAuthnDecisionSurface_BearerTokenWrongSecret(t *testing.T) {
	r := httptest.NewRequest("GET", "/consent/pending", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", "wallet-bridge"))

	assert.Error(t, AuthnDecisionSurface(r))
}

func TestAuthnDecisionSurface_BearerTokenWrongAudience(t *testing.T) {
	r := httptest.NewRequest("GET", "/consent/pending", nil)
	r.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, "someone-else"))

	assert.Error(t, AuthnDecisionSurface(r))
}

func TestAuthnDecisionSurface_MissingHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/consent/pending", nil)

	assert.Error(t, AuthnDecisionSurface(r))
}
