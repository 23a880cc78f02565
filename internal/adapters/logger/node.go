package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/modfind/internal/adapters/config"
	"go.trai.ch/modfind/internal/core/domain"
	"go.trai.ch/modfind/internal/core/ports"
)

const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewWithLevel(os.Stderr, cfg.LogLevel), nil
		},
	})
}
