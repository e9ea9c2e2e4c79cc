package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/serv/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/serv/internal/core/ports"
)

// TracerNodeID is the unique identifier for the telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// traceEnv enables span logging when set to a non-empty value.
const traceEnv = "SERV_TRACE"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			if os.Getenv(traceEnv) == "" {
				return NewNoOpTracer(), nil
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			SetupProvider(log)
			return NewOTelTracer("serv"), nil
		},
	})
}
