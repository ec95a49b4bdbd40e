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

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/config"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/database/client"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
	"github.com/HessamRisky-NEW/wallet-bridge/test/setup"
)

var testDSN string

// dsnProvider opens a fresh connection per client, so the store's
// close-after-use pattern never tears down a shared pool.
type dsnProvider struct {
	dsn string
}

func (p *dsnProvider) GetDBClient() (client.DBClientInterface, error) {
	db, err := sql.Open("postgres", p.dsn)
	if err != nil {
		return nil, err
	}
	return client.NewDBClient(db), nil
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	conf := config.Config{
		Log: config.LogConfig{LogLevel: "DEBUG"},
	}
	config.OverrideBridgeRuntime(conf)
	_ = log.Init("DEBUG")

	pg, err := setup.SetupTestPostgres(ctx)
	if err != nil {
		fmt.Println("Failed to start test DB:", err)
		os.Exit(1)
	}
	testDSN = pg.DSN

	code := m.Run()

	_ = pg.Container.Terminate(ctx)
	os.Exit(code)
}
