// Package node implements the state vertex of a phase's graph: three
// scoped value bags (params, vars, properties), generalizing the
// teacher's single Props bag (graph.Node.Props) into the three bags
// spec.md §3 requires.
package node

import (
	"maps"

	"github.com/ritamzico/hsmgraph/internal/value"
)

// ID identifies a Node, unique within its phase.
type ID string

// Node is a state of a single-phase graph. Params and Properties are
// immutable after construction; Vars is the only bag action writes
// (SetVar) may mutate.
type Node struct {
	ID         ID
	Params     map[string]value.Value
	Vars       map[string]value.Value
	Properties map[string]value.Value
}

// New constructs a Node, copying each bag the way the teacher copies
// Props on AddNode (maps.Clone), so the caller's maps are never
// aliased into the graph.
func New(id ID, params, vars, properties map[string]value.Value) *Node {
	return &Node{
		ID:         id,
		Params:     maps.Clone(params),
		Vars:       maps.Clone(vars),
		Properties: maps.Clone(properties),
	}
}

// Param reads the params bag. Absent is reported distinctly from
// present-but-false via the ok return.
func (n *Node) Param(key string) (value.Value, bool) {
	v, ok := n.Params[key]
	return v, ok
}

// Var reads the vars bag.
func (n *Node) Var(key string) (value.Value, bool) {
	v, ok := n.Vars[key]
	return v, ok
}

// Property reads the properties bag.
func (n *Node) Property(key string) (value.Value, bool) {
	v, ok := n.Properties[key]
	return v, ok
}

// SetVar writes key in the vars bag, overwriting any existing value
// regardless of its prior Kind: variables are dynamically tagged, so
// an action may change a variable's type across ticks (see Design
// Notes, "edge action value overwriting type").
func (n *Node) SetVar(key string, v value.Value) {
	if n.Vars == nil {
		n.Vars = make(map[string]value.Value)
	}
	n.Vars[key] = v
}
