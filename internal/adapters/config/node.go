package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/modfind/internal/core/domain"
	"go.trai.ch/modfind/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	LoaderNodeID graft.ID = "adapter.config_loader"
	NodeID       graft.ID = "adapter.config"
)

func init() {
	// Loader Node
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	// Config Node, loaded once from the working directory
	graft.Register(graft.Node[domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID},
		Run: func(ctx context.Context) (domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.Config{}, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return domain.Config{}, zerr.Wrap(err, "failed to get working directory")
			}
			return loader.Load(cwd)
		},
	})
}
