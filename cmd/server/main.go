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

package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/config"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/constants"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/log"
	"github.com/HessamRisky-NEW/wallet-bridge/internal/system/managers"
)

func main() {
	bridgeHome := getBridgeHome()
	const configFile = "repository/conf/deployment.yaml"

	envFiles, _ := filepath.Glob("config/*.env")
	_ = godotenv.Load(envFiles...)

	// Load the configuration file.
	bridgeConfig, err := config.LoadConfig(bridgeHome, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize runtime configurations.
	if err := config.InitializeBridgeRuntime(bridgeHome, bridgeConfig); err != nil {
		stdlog.Fatalf("Failed to initialize bridge runtime: %v", err)
	}

	// Initialize logger.
	if err := log.Init(bridgeConfig.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	serverAddr := fmt.Sprintf("%s:%d", bridgeConfig.Addr.Host, bridgeConfig.Addr.Port)
	mux := enableCORS(initMultiplexer())

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.String("addr", serverAddr), log.Error(err))
	}

	logger.Info("wallet-bridge started", log.String("addr", serverAddr))

	server := &http.Server{Handler: mux}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services", log.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getBridgeHome() string {

	projectHome := ""
	projectHomeFlag := flag.String("bridgeHome", "", "Path to the wallet bridge home directory")
	flag.Parse()

	if projectHomeFlag != nil && *projectHomeFlag != "" {
		projectHome = *projectHomeFlag
	} else if envHome := os.Getenv("BRIDGE_HOME"); envHome != "" {
		projectHome = envHome
	} else {
		wd, err := os.Getwd()
		if err != nil {
			stdlog.Fatalf("Failed to resolve working directory: %v", err)
		}
		projectHome = wd
	}

	return projectHome
}
