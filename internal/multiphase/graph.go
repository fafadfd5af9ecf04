// Package multiphase implements the hierarchical layer of the runtime:
// phases, phase edges, and the §4.7 hierarchical Step. It reuses
// internal/stategraph as the embedded machine for each phase, the same
// way the teacher's engine.InferenceEngine wraps a single
// graph.ProbabilisticGraphModel — except here the wrapping happens once
// per phase, one level up.
package multiphase

import (
	"github.com/ritamzico/hsmgraph/internal/expr"
	"github.com/ritamzico/hsmgraph/internal/node"
	"github.com/ritamzico/hsmgraph/internal/parser"
)

// StepResult is the post-tick report of a hierarchical Step: at most
// one node transition and at most one phase transition per call.
type StepResult struct {
	PhaseChanged bool
	StateChanged bool
	PhaseID      PhaseID
	StateID      node.ID
}

// Graph owns every phase and phase edge created at load time. Only
// phase vars, the per-phase current-node pointer, and the
// multi-phase current-phase pointer mutate afterward.
type Graph struct {
	phases     []*Phase
	phaseIndex map[PhaseID]int
	phaseEdges []*PhaseEdge
	adjacency  map[PhaseID][]int // indices into phaseEdges, declaration order
	current    int               // -1 when unset
}

// New returns an empty multi-phase graph with no current phase.
func New() *Graph {
	return &Graph{
		phaseIndex: make(map[PhaseID]int),
		adjacency:  make(map[PhaseID][]int),
		current:    -1,
	}
}

// AddPhase appends a phase, failing with DuplicatePhaseID if id is
// already present.
func (g *Graph) AddPhase(id PhaseID) (*Phase, error) {
	if _, exists := g.phaseIndex[id]; exists {
		return nil, DuplicatePhaseID(string(id))
	}

	p := newPhase(id)
	g.phaseIndex[id] = len(g.phases)
	g.phases = append(g.phases, p)
	g.adjacency[id] = nil
	return p, nil
}

// Phase returns the phase with the given id, if any.
func (g *Graph) Phase(id PhaseID) (*Phase, bool) {
	idx, ok := g.phaseIndex[id]
	if !ok {
		return nil, false
	}
	return g.phases[idx], true
}

// Phases returns every phase in declaration order.
func (g *Graph) Phases() []*Phase {
	return g.phases
}

// SetPhaseInitialState records id's declared initial_state and
// applies it to the phase's graph immediately, the way the
// configuration loader does at load time (§4.8).
func (g *Graph) SetPhaseInitialState(id PhaseID, stateID node.ID) error {
	p, ok := g.Phase(id)
	if !ok {
		return UnknownPhase(string(id))
	}
	if !p.Graph.SetInitialState(stateID) {
		return UnknownEndpointInPhase(string(id), string(stateID))
	}
	p.InitialState = stateID
	p.HasInitialState = true
	return nil
}

// AddPhaseEdge compiles condition and appends a phase edge to from's
// outgoing adjacency, in declaration order. Fails with UnknownPhase if
// either from or to is not a known phase id.
func (g *Graph) AddPhaseEdge(from, to PhaseID, condition string) error {
	if _, ok := g.phaseIndex[from]; !ok {
		return UnknownPhase(string(from))
	}
	if _, ok := g.phaseIndex[to]; !ok {
		return UnknownPhase(string(to))
	}

	tree, err := parser.Compile(condition)
	if err != nil {
		return err
	}

	pe := &PhaseEdge{From: from, To: to, Condition: condition, tree: tree}
	idx := len(g.phaseEdges)
	g.phaseEdges = append(g.phaseEdges, pe)
	g.adjacency[from] = append(g.adjacency[from], idx)
	return nil
}

// SetInitialPhase sets the current phase from id. On success, if that
// phase declares an initial_state, its current node is forced to it
// even if the phase already had a current node — this is the only
// operation that overrides phase resumption (§4.7, Design Notes).
func (g *Graph) SetInitialPhase(id PhaseID) bool {
	idx, ok := g.phaseIndex[id]
	if !ok {
		return false
	}
	g.current = idx

	p := g.phases[idx]
	if p.HasInitialState {
		p.Graph.SetInitialState(p.InitialState)
	}
	return true
}

// HasCurrentPhase reports whether a current phase is set.
func (g *Graph) HasCurrentPhase() bool {
	return g.current >= 0
}

func (g *Graph) currentPhase() (*Phase, error) {
	if !g.HasCurrentPhase() {
		return nil, NoCurrentPhase()
	}
	return g.phases[g.current], nil
}

// CurrentPhaseID returns the id of the current phase.
func (g *Graph) CurrentPhaseID() (PhaseID, error) {
	p, err := g.currentPhase()
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// CurrentStateID delegates to the current phase's graph.
func (g *Graph) CurrentStateID() (node.ID, error) {
	p, err := g.currentPhase()
	if err != nil {
		return "", err
	}
	return p.Graph.CurrentID()
}

// CurrentNode delegates to the current phase's graph. The returned
// pointer is the same mutable/immutable dual-purpose handle described
// in stategraph.Graph.CurrentNode.
func (g *Graph) CurrentNode() (*node.Node, error) {
	p, err := g.currentPhase()
	if err != nil {
		return nil, err
	}
	return p.Graph.CurrentNode()
}

// Step performs the hierarchical advancement of §4.7: the current
// phase's node-level Step runs first, then outgoing phase edges are
// evaluated against the (possibly updated) current node; the first
// one whose condition is true switches the current phase. Both flags
// may be false (a quiescent tick); both may be true.
func (g *Graph) Step() (StepResult, error) {
	if !g.HasCurrentPhase() {
		return StepResult{}, nil
	}

	p := g.phases[g.current]

	_, stateChanged, err := p.Graph.Step()
	if err != nil {
		return StepResult{}, err
	}

	phaseChanged, err := g.tryPhaseTransition(p)
	if err != nil {
		return StepResult{}, err
	}

	final := g.phases[g.current]
	result := StepResult{
		PhaseChanged: phaseChanged,
		StateChanged: stateChanged,
		PhaseID:      final.ID,
	}
	if id, err := final.Graph.CurrentID(); err == nil {
		result.StateID = id
	}
	return result, nil
}

// tryPhaseTransition evaluates p's outgoing phase edges, in
// declaration order, against p's current node. The first one to fire
// switches the current phase and returns true. If p has no current
// node, there is nothing to evaluate against and no phase edge fires.
func (g *Graph) tryPhaseTransition(p *Phase) (bool, error) {
	curNode, err := p.Graph.CurrentNode()
	if err != nil {
		return false, nil
	}

	for _, idx := range g.adjacency[p.ID] {
		pe := g.phaseEdges[idx]

		fires, err := expr.Eval(pe.tree, curNode)
		if err != nil {
			return false, err
		}
		if !fires {
			continue
		}

		targetIdx := g.phaseIndex[pe.To]
		target := g.phases[targetIdx]
		g.current = targetIdx

		if !target.Graph.HasCurrent() && target.HasInitialState {
			target.Graph.SetInitialState(target.InitialState)
		}
		return true, nil
	}

	return false, nil
}
