package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/modfind/internal/core/ports"
)

const (
	ProbeNodeID  graft.ID = "adapter.fs.probe"
	ReaderNodeID graft.ID = "adapter.fs.reader"
)

func init() {
	// Probe Node
	graft.Register(graft.Node[ports.FileProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileProbe, error) {
			return NewProbe(), nil
		},
	})

	// Reader Node
	graft.Register(graft.Node[ports.TextReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.TextReader, error) {
			return NewReader(), nil
		},
	})
}
