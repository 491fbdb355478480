package app

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/livetree/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/livetree/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/livetree/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/livetree/internal/adapters/tui"     //nolint:depguard // Wired in app layer
	"go.trai.ch/livetree/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/livetree/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.NodeID,
			fs.IgnoreCompilerNodeID,
			watcher.NodeID,
			tui.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.TreeBuilder](ctx)
	if err != nil {
		return nil, err
	}

	ignores, err := graft.Dep[ports.IgnoreCompiler](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	surface, err := graft.Dep[ports.Surface](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, builder, ignores, w, surface), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
