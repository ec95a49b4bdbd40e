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

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

// AuthConfig holds credentials accepted on the consent-decision surface.
type AuthConfig struct {
	AdminUsername string `yaml:"admin_username"`
	AdminPassword string `yaml:"admin_password"`
	JWTSecret     string `yaml:"jwt_secret"`
	JWTAudience   string `yaml:"jwt_audience"`
}

// DataSourceConfig selects and configures the permission store backend.
type DataSourceConfig struct {
	Type     string `yaml:"type"` // memory | postgres | mongo
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`

	MongoURI        string `yaml:"mongo_uri"`
	MongoDatabase   string `yaml:"mongo_database"`
	MongoCollection string `yaml:"mongo_collection"`
}

// ProviderConfig points at the trusted internal RPC provider.
type ProviderConfig struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// LauncherConfig configures the consent window launcher. DisplayWidth is the
// width of the display surface the popup is anchored to; Endpoint, when set,
// receives a fire-and-forget notification for every opened flow.
type LauncherConfig struct {
	DisplayWidth int    `yaml:"display_width"`
	Endpoint     string `yaml:"endpoint"`
}

type Config struct {
	Addr       AddrConfig       `yaml:"addr"`
	Log        LogConfig        `yaml:"log"`
	Auth       AuthConfig       `yaml:"auth"`
	DataSource DataSourceConfig `yaml:"datasource"`
	Provider   ProviderConfig   `yaml:"provider"`
	Launcher   LauncherConfig   `yaml:"launcher"`
}

// LoadConfig reads the deployment configuration file relative to the bridge
// home directory, expanding environment variable references before parsing.
func LoadConfig(bridgeHome, configFile string) (*Config, error) {
	file, err := os.ReadFile(path.Join(bridgeHome, configFile))
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Log.LogLevel == "" {
		config.Log.LogLevel = "INFO"
	}
	if config.DataSource.Type == "" {
		config.DataSource.Type = "memory"
	}
	if config.Provider.TimeoutSeconds <= 0 {
		config.Provider.TimeoutSeconds = 30
	}
	if config.Launcher.DisplayWidth <= 0 {
		config.Launcher.DisplayWidth = 1920
	}
}
