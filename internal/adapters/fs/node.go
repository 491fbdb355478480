package fs

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/livetree/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the tree builder Graft node.
	NodeID graft.ID = "adapter.fs.walker"
	// IgnoreCompilerNodeID is the unique identifier for the ignore compiler Graft node.
	IgnoreCompilerNodeID graft.ID = "adapter.fs.ignore"
)

func init() {
	graft.Register(graft.Node[ports.TreeBuilder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TreeBuilder, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.IgnoreCompiler]{
		ID:        IgnoreCompilerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IgnoreCompiler, error) {
			return NewIgnoreCompiler(), nil
		},
	})
}
