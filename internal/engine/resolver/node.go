package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modfind/internal/adapters/config"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modfind/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modfind/internal/adapters/handlers" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modfind/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modfind/internal/adapters/manifest" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/modfind/internal/core/domain"
	"go.trai.ch/modfind/internal/core/ports"
)

// NodeID is the unique identifier for the resolver factory Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.ResolverFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ProbeNodeID,
			fs.ReaderNodeID,
			manifest.NodeID,
			handlers.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (ports.ResolverFactory, error) {
			probe, err := graft.Dep[ports.FileProbe](ctx)
			if err != nil {
				return nil, err
			}

			reader, err := graft.Dep[ports.TextReader](ctx)
			if err != nil {
				return nil, err
			}

			decoder, err := graft.Dep[ports.ManifestDecoder](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[ports.ExtensionRegistry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			opts := OptionsFromConfig(cfg)
			return func() ports.PathResolver {
				return New(probe, reader, decoder, registry, log, NewCache(), opts)
			}, nil
		},
	})
}
