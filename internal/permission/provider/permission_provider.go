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

package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/permission/store"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/config"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/constants"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
)

var (
	storeInstance store.PermissionStoreInterface
	storeErr      error
	storeOnce     sync.Once
)

// PermissionStoreProviderInterface defines the interface for getting the
// configured permission store.
type PermissionStoreProviderInterface interface {
	GetPermissionStore() (store.PermissionStoreInterface, error)
}

// PermissionStoreProvider selects the store backend from the runtime
// configuration and caches a single instance.
type PermissionStoreProvider struct{}

// NewPermissionStoreProvider creates a new instance of PermissionStoreProvider.
func NewPermissionStoreProvider() PermissionStoreProviderInterface {

	return &PermissionStoreProvider{}
}

// GetPermissionStore returns the permission store for the configured backend.
func (p *PermissionStoreProvider) GetPermissionStore() (store.PermissionStoreInterface, error) {

	storeOnce.Do(func() {
		storeInstance, storeErr = buildStore()
	})
	return storeInstance, storeErr
}

func buildStore() (store.PermissionStoreInterface, error) {

	dataSource := config.GetBridgeRuntime().Config.DataSource
	logger := log.GetLogger()

	switch dataSource.Type {
	case constants.StoreTypePostgres:
		logger.Info("Using postgres permission store")
		return store.NewPostgresPermissionStore()

	case constants.StoreTypeMongo:
		logger.Info("Using mongo permission store")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(dataSource.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		if err := mongoClient.Ping(ctx, nil); err != nil {
			return nil, fmt.Errorf("failed to ping mongo: %w", err)
		}
		collection := dataSource.MongoCollection
		if collection == "" {
			collection = "origin_permissions"
		}
		return store.NewMongoPermissionStore(mongoClient.Database(dataSource.MongoDatabase), collection), nil

	case constants.StoreTypeMemory, "":
		logger.Info("Using in-memory permission store")
		return store.NewInMemoryPermissionStore(), nil

	default:
		return nil, fmt.Errorf("unknown datasource type: %s", dataSource.Type)
	}
}
