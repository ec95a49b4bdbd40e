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

package store

import (
	"fmt"

	model "github.com/HessamRisky-NEW/wallet-bridge/internal/permission/model"
	dbprovider "github.com/HessamRisky-NEW/wallet-bridge/internal/system/database/provider"
	errors2 "github.com/HessamRisky-NEW/wallet-bridge/internal/system/errors"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
)

const createOriginPermissionsTable = `
CREATE TABLE IF NOT EXISTS origin_permissions (
	origin        TEXT PRIMARY KEY,
	display_icon  TEXT NOT NULL DEFAULT '',
	display_title TEXT NOT NULL DEFAULT '',
	state         TEXT NOT NULL,
	requested_at  BIGINT NOT NULL DEFAULT 0
)`

// PostgresPermissionStore persists permission records in postgres. Only
// allowed records are kept: a grant upserts, a revoke deletes, so absent
// means unauthorized.
type PostgresPermissionStore struct {
	provider dbprovider.DBProviderInterface
}

// NewPostgresPermissionStore creates a postgres-backed store and ensures the
// schema exists.
func NewPostgresPermissionStore() (*PostgresPermissionStore, error) {
	s := &PostgresPermissionStore{provider: dbprovider.NewDBProvider()}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewPostgresPermissionStoreWithProvider creates a store over a caller
// supplied provider. Used by integration tests.
func NewPostgresPermissionStoreWithProvider(provider dbprovider.DBProviderInterface) (*PostgresPermissionStore, error) {
	s := &PostgresPermissionStore{provider: provider}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresPermissionStore) ensureSchema() error {
	dbClient, err := s.provider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to get db client for schema setup: %w", err)
	}
	defer dbClient.Close()

	if _, err := dbClient.Exec(createOriginPermissionsTable); err != nil {
		return fmt.Errorf("failed to create origin_permissions table: %w", err)
	}
	return nil
}

func (s *PostgresPermissionStore) Check(origin string) (bool, error) {

	dbClient, err := s.provider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for checking origin: %s", origin)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.CHECK_PERMISSION.Code,
			Message:     errors2.CHECK_PERMISSION.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT 1 FROM origin_permissions WHERE origin = $1 AND state = $2`
	results, err := dbClient.ExecuteQuery(query, origin, string(model.StateAllowed))
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for checking origin: %s", origin)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.CHECK_PERMISSION.Code,
			Message:     errors2.CHECK_PERMISSION.Message,
			Description: errorMsg,
		}, err)
	}
	return len(results) > 0, nil
}

func (s *PostgresPermissionStore) Grant(record model.PermissionRequest) error {

	dbClient, err := s.provider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for granting origin: %s", record.Origin)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GRANT_PERMISSION.Code,
			Message:     errors2.GRANT_PERMISSION.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `INSERT INTO origin_permissions (origin, display_icon, display_title, state, requested_at)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (origin) DO UPDATE SET
					display_icon = EXCLUDED.display_icon,
					display_title = EXCLUDED.display_title,
					state = EXCLUDED.state,
					requested_at = EXCLUDED.requested_at`
	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for granting origin: %s", record.Origin)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GRANT_PERMISSION.Code,
			Message:     errors2.GRANT_PERMISSION.Message,
			Description: errorMsg,
		}, err)
	}
	_, err = tx.Exec(query, record.Origin, record.DisplayIcon, record.DisplayTitle,
		string(model.StateAllowed), record.RequestedAt)
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			errorMsg := fmt.Sprintf("Failed to rollback granting origin: %s", record.Origin)
			logger.Debug(errorMsg, log.Error(errRollback))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.GRANT_PERMISSION.Code,
				Message:     errors2.GRANT_PERMISSION.Message,
				Description: errorMsg,
			}, errRollback)
		}
		errorMsg := fmt.Sprintf("Failed to execute query for granting origin: %s", record.Origin)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GRANT_PERMISSION.Code,
			Message:     errors2.GRANT_PERMISSION.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully granted permission for origin: %s", record.Origin))
	return tx.Commit()
}

func (s *PostgresPermissionStore) Revoke(origin string) error {

	dbClient, err := s.provider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for revoking origin: %s", origin)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.REVOKE_PERMISSION.Code,
			Message:     errors2.REVOKE_PERMISSION.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	// Deleting an absent origin is a no-op by design.
	query := `DELETE FROM origin_permissions WHERE origin = $1`
	if _, err := dbClient.Exec(query, origin); err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for revoking origin: %s", origin)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.REVOKE_PERMISSION.Code,
			Message:     errors2.REVOKE_PERMISSION.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

func (s *PostgresPermissionStore) List() ([]model.PermissionRequest, error) {

	dbClient, err := s.provider.GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching origin permissions."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_PERMISSIONS.Code,
			Message:     errors2.FETCH_PERMISSIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT origin, display_icon, display_title, state, requested_at FROM origin_permissions`
	results, err := dbClient.ExecuteQuery(query)
	if err != nil {
		errorMsg := "Failed to execute query for fetching origin permissions."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_PERMISSIONS.Code,
			Message:     errors2.FETCH_PERMISSIONS.Message,
			Description: errorMsg,
		}, err)
	}

	records := make([]model.PermissionRequest, 0, len(results))
	for _, row := range results {
		records = append(records, model.PermissionRequest{
			Origin:       asString(row["origin"]),
			DisplayIcon:  asString(row["display_icon"]),
			DisplayTitle: asString(row["display_title"]),
			State:        model.PermissionState(asString(row["state"])),
			RequestedAt:  asInt64(row["requested_at"]),
		})
	}
	return records, nil
}

func asString(value interface{}) string {
	s, _ := value.(string)
	return s
}

func asInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		var n int64
		_, _ = fmt.Sscan(v, &n)
		return n
	default:
		return 0
	}
}
