package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/serv/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
)

// NodeID is the unique identifier for the file watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(cfg.WatchIgnore)
		},
	})
}

// DebounceWindow converts the configured debounce window to a duration.
func DebounceWindow(cfg *domain.Config) time.Duration {
	return time.Duration(cfg.DebounceMillis) * time.Millisecond
}
