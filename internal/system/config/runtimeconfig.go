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

package config

import "sync"

// BridgeRuntime holds the runtime configuration for the bridge server.
type BridgeRuntime struct {
	BridgeHome string `yaml:"bridge_home"`
	Config     Config `yaml:"config"`
}

var (
	runtimeConfig *BridgeRuntime
	once          sync.Once
)

// InitializeBridgeRuntime initializes the BridgeRuntime configuration.
func InitializeBridgeRuntime(bridgeHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &BridgeRuntime{
			BridgeHome: bridgeHome,
			Config:     *config,
		}
	})

	return nil
}

// OverrideBridgeRuntime replaces the runtime configuration. Test setup only.
func OverrideBridgeRuntime(conf Config) {
	runtimeConfig = &BridgeRuntime{
		Config: conf,
	}
}

// GetBridgeRuntime returns the BridgeRuntime configuration.
func GetBridgeRuntime() *BridgeRuntime {

	if runtimeConfig == nil {
		panic("BridgeRuntime is not initialized")
	}
	return runtimeConfig
}
