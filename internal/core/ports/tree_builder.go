package ports

import "go.trai.ch/livetree/internal/core/domain"

// TreeBuilder defines the interface for producing tree snapshots.
//
//go:generate mockgen -source=tree_builder.go -destination=mocks/mock_tree_builder.go -package=mocks
type TreeBuilder interface {
	// Build walks root and returns the filtered, sorted and laid out entries.
	// I/O failures are reported on the affected entries, never as a panic.
	Build(root string, cfg domain.TreeConfig) domain.TreeSnapshot
}
