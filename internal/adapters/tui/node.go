package tui

import (
	"context"
	"os"

	"github.com/grindlemire/graft"

	"go.trai.ch/livetree/internal/core/ports"
)

// NodeID is the unique identifier for the terminal surface Graft node.
const NodeID graft.ID = "adapter.tui"

func init() {
	graft.Register(graft.Node[ports.Surface]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Surface, error) {
			return NewTerminal(os.Stdin, os.Stdout), nil
		},
	})
}
