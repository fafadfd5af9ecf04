// Package stategraph implements a single phase's finite state machine:
// nodes, guarded edges, indexed adjacency, and the node-level Step.
// Grounded on the teacher's adjacency-list shape
// (graph/probabilistic_adjacency_list_graph.go: nodeMap + per-node
// index + Add* existence checks) but with ordered ([]int) adjacency
// instead of map adjacency, since §4.6 requires declaration-order,
// first-match edge selection that an unordered Go map cannot give
// deterministically.
package stategraph

import (
	"github.com/ritamzico/hsmgraph/internal/expr"
	"github.com/ritamzico/hsmgraph/internal/node"
	"github.com/ritamzico/hsmgraph/internal/parser"
	"github.com/ritamzico/hsmgraph/internal/value"
)

// Assignment is one entry of an edge's ordered action list.
type Assignment struct {
	Key   string
	Value value.Value
}

// Edge is a guarded transition between two nodes of the same phase.
type Edge struct {
	From, To  node.ID
	Condition string
	tree      *expr.Expr
	Actions   []Assignment
}

// Graph is a single phase's state machine. Nodes and edges are added
// once at load time; only node Vars and the current-node index mutate
// afterward. Indices into nodes/edges are internal and never exposed
// across the package boundary.
type Graph struct {
	nodes     []*node.Node
	nodeIndex map[node.ID]int
	edges     []*Edge
	adjacency map[node.ID][]int // indices into edges, in declaration order
	current   int               // -1 when unset
}

// New returns an empty single-phase graph with no current node.
func New() *Graph {
	return &Graph{
		nodeIndex: make(map[node.ID]int),
		adjacency: make(map[node.ID][]int),
		current:   -1,
	}
}

// AddNode appends a node, failing with DuplicateID if id is already
// present in this phase.
func (g *Graph) AddNode(id node.ID, params, vars, properties map[string]value.Value) error {
	if _, exists := g.nodeIndex[id]; exists {
		return DuplicateID(string(id))
	}

	n := node.New(id, params, vars, properties)
	g.nodeIndex[id] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.adjacency[id] = nil
	return nil
}

// AddEdge compiles condition and appends an edge to from's outgoing
// adjacency, in declaration order. Fails with UnknownEndpoint if
// either from or to is not a known node id in this phase, or with a
// lexer/parser error if condition fails to compile.
func (g *Graph) AddEdge(from, to node.ID, condition string, actions []Assignment) error {
	if _, ok := g.nodeIndex[from]; !ok {
		return UnknownEndpoint(string(from))
	}
	if _, ok := g.nodeIndex[to]; !ok {
		return UnknownEndpoint(string(to))
	}

	tree, err := parser.Compile(condition)
	if err != nil {
		return err
	}

	e := &Edge{From: from, To: to, Condition: condition, tree: tree, Actions: actions}
	idx := len(g.edges)
	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], idx)
	return nil
}

// SetInitialState sets the current node from id, returning whether id
// was a known node.
func (g *Graph) SetInitialState(id node.ID) bool {
	idx, ok := g.nodeIndex[id]
	if !ok {
		return false
	}
	g.current = idx
	return true
}

// HasCurrent reports whether a current node is set.
func (g *Graph) HasCurrent() bool {
	return g.current >= 0
}

// CurrentID returns the id of the current node, failing with
// NoCurrentState if unset.
func (g *Graph) CurrentID() (node.ID, error) {
	if !g.HasCurrent() {
		return "", NoCurrentState()
	}
	return g.nodes[g.current].ID, nil
}

// CurrentNode returns the current node itself, failing with
// NoCurrentState if unset. The returned pointer aliases internal
// storage; callers that only read should treat it as read-only — the
// mutable view drivers use to inject stimulus between ticks is the
// same pointer, by design (§6: "a mutable view is provided for
// drivers that inject stimulus by writing vars between ticks").
func (g *Graph) CurrentNode() (*node.Node, error) {
	if !g.HasCurrent() {
		return nil, NoCurrentState()
	}
	return g.nodes[g.current], nil
}

// ContainsNode reports whether id is a known node in this phase.
func (g *Graph) ContainsNode(id node.ID) bool {
	_, ok := g.nodeIndex[id]
	return ok
}

// Node returns the node with the given id, if any.
func (g *Graph) Node(id node.ID) (*node.Node, bool) {
	idx, ok := g.nodeIndex[id]
	if !ok {
		return nil, false
	}
	return g.nodes[idx], true
}

// Step performs §4.6's node-level advancement: the first outgoing edge
// of the current node whose condition evaluates true is taken. It
// returns the (possibly unchanged) current id and whether a
// transition occurred. If current is unset, it is a no-op returning
// ("", false, nil). If evaluating a condition raises an EvalError, the
// graph is left exactly as it was and the error propagates.
func (g *Graph) Step() (node.ID, bool, error) {
	if !g.HasCurrent() {
		return "", false, nil
	}

	cur := g.nodes[g.current]
	for _, edgeIdx := range g.adjacency[cur.ID] {
		e := g.edges[edgeIdx]

		fires, err := expr.Eval(e.tree, cur)
		if err != nil {
			return "", false, err
		}
		if !fires {
			continue
		}

		destIdx := g.nodeIndex[e.To]
		dest := g.nodes[destIdx]
		for _, a := range e.Actions {
			dest.SetVar(a.Key, a.Value)
		}
		g.current = destIdx
		return dest.ID, true, nil
	}

	return cur.ID, false, nil
}
