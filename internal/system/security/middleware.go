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
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/config"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/errors"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
)

// AuthnDecisionSurface authenticates a request to the consent-decision API.
// Basic admin credentials and bearer JWTs signed with the configured secret
// are both accepted. Requester-channel endpoints never go through this check;
// the decision surface is a trusted out-of-band actor.
func AuthnDecisionSurface(r *http.Request) error {

	authHeader := r.Header.Get("Authorization")

	switch {
	case strings.HasPrefix(authHeader, "Basic "):
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Basic "))
		valid, err := validateAdminCredentials(token)
		if err != nil || !valid {
			return unauthorizedError("Invalid admin credentials")
		}
		return nil

	case strings.HasPrefix(authHeader, "Bearer "):
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if err := validateBearerToken(token); err != nil {
			return unauthorizedError("Invalid bearer token")
		}
		return nil

	default:
		return unauthorizedError("Missing or invalid Authorization header")
	}
}

func validateAdminCredentials(token string) (bool, error) {

	authConfig := config.GetBridgeRuntime().Config.Auth
	username := strings.TrimSpace(authConfig.AdminUsername)
	password := strings.TrimSpace(authConfig.AdminPassword)
	if username == "" || password == "" || token == "" {
		return false, nil
	}

	creds := username + ":" + password
	expected := base64.StdEncoding.EncodeToString([]byte(creds))

	if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1 {
		log.GetLogger().Debug("Admin credentials validated successfully.")
		return true, nil
	}

	return false, nil
}

// validateBearerToken verifies the JWT signature against the configured shared
// secret and, when an audience is configured, checks the aud claim.
func validateBearerToken(tokenString string) error {

	logger := log.GetLogger()
	authConfig := config.GetBridgeRuntime().Config.Auth
	if authConfig.JWTSecret == "" {
		logger.Debug("Bearer token presented but no JWT secret is configured.")
		return unauthorizedError("Bearer authentication is not configured")
	}

	claims := jwt.MapClaims{}
	parserOptions := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"})}
	if authConfig.JWTAudience != "" {
		parserOptions = append(parserOptions, jwt.WithAudience(authConfig.JWTAudience))
	}

	_, err := jwt.NewParser(parserOptions...).ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(authConfig.JWTSecret), nil
	})
	if err != nil {
		logger.Debug("Failed to validate bearer token.", log.Error(err))
		return errors.NewServerError(errors.ErrorMessage{
			Code:        errors.PARSING_ERROR.Code,
			Message:     errors.PARSING_ERROR.Message,
			Description: "Error occurred when validating the bearer token.",
		}, err)
	}
	return nil
}

func unauthorizedError(description string) error {
	return errors.NewClientError(errors.ErrorMessage{
		Code:        errors.UN_AUTHORIZED.Code,
		Message:     errors.UN_AUTHORIZED.Message,
		Description: description,
	}, http.StatusUnauthorized)
}
