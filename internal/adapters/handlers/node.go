package handlers

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modfind/internal/adapters/config"
	"go.trai.ch/modfind/internal/core/domain"
	"go.trai.ch/modfind/internal/core/ports"
)

const NodeID graft.ID = "adapter.handler_registry"

func init() {
	graft.Register(graft.Node[ports.ExtensionRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ExtensionRegistry, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			registry, err := NewRegistry(cfg.Extensions...)
			if err != nil {
				return nil, err
			}
			return registry, nil
		},
	})
}
