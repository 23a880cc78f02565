package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modfind/internal/core/ports"
)

const NodeID graft.ID = "adapter.manifest_decoder"

func init() {
	graft.Register(graft.Node[ports.ManifestDecoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ManifestDecoder, error) {
			return NewJSONDecoder(), nil
		},
	})
}
