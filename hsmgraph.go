// Package hsmgraph is the public entry point for the hierarchical
// state-machine runtime: load a multi-phase graph from JSON or the
// configdsl shorthand, then step it, the same way the teacher's
// pgraph.go wraps internal/serialization and internal/dsl behind a
// thin root-level type.
package hsmgraph

import (
	"io"

	"github.com/ritamzico/hsmgraph/internal/configdsl"
	"github.com/ritamzico/hsmgraph/internal/loader"
	"github.com/ritamzico/hsmgraph/internal/multiphase"
	"github.com/ritamzico/hsmgraph/internal/node"
	"github.com/ritamzico/hsmgraph/internal/value"
)

type (
	Graph      = multiphase.Graph
	Phase      = multiphase.Phase
	PhaseID    = multiphase.PhaseID
	StepResult = multiphase.StepResult
	Node       = node.Node
	NodeID     = node.ID
	Value      = value.Value
)

// New returns an empty graph with no phases and no current phase, for
// callers that build one up programmatically via Graph's Add* methods.
func New() *Graph {
	return multiphase.New()
}

// Load decodes a configuration document (§4.8) from r and builds the
// graph it describes. The boolean result is false when r could not
// even be read or decoded as JSON; err is non-nil only once the
// document's shape is known and a structural or semantic problem is
// found in it.
func Load(r io.Reader) (*Graph, bool, error) {
	return loader.Load(r)
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Graph, bool, error) {
	return loader.LoadFile(path)
}

// Compile builds a graph from configdsl source, the human-authoring
// shorthand of internal/configdsl, instead of a JSON document.
func Compile(src string) (*Graph, error) {
	return configdsl.Compile(src)
}
