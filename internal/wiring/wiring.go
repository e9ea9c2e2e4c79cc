// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/serv/internal/adapters/cache"
	_ "go.trai.ch/serv/internal/adapters/config"
	_ "go.trai.ch/serv/internal/adapters/hmr"
	_ "go.trai.ch/serv/internal/adapters/logger"
	_ "go.trai.ch/serv/internal/adapters/resolver"
	_ "go.trai.ch/serv/internal/adapters/telemetry"
	_ "go.trai.ch/serv/internal/adapters/watcher"
	_ "go.trai.ch/serv/internal/adapters/web"
	// Register app and engine nodes.
	_ "go.trai.ch/serv/internal/app"
	_ "go.trai.ch/serv/internal/engine/rewrite"
)
