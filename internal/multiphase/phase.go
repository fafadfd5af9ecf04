package multiphase

import (
	"github.com/ritamzico/hsmgraph/internal/expr"
	"github.com/ritamzico/hsmgraph/internal/node"
	"github.com/ritamzico/hsmgraph/internal/stategraph"
)

// PhaseID identifies a Phase, unique across the multi-phase graph.
type PhaseID string

// Phase is a named finite state machine: an embedded single-phase
// graph plus an optional declared initial state, remembered separately
// from the graph's current-node pointer so SetInitialPhase can force
// it again later without losing track of what "initial" means for
// this phase.
type Phase struct {
	ID              PhaseID
	Graph           *stategraph.Graph
	InitialState    node.ID
	HasInitialState bool
}

func newPhase(id PhaseID) *Phase {
	return &Phase{ID: id, Graph: stategraph.New()}
}

// PhaseEdge is a guarded transition between two phases, evaluated
// against the current node of the source phase.
type PhaseEdge struct {
	From, To  PhaseID
	Condition string
	tree      *expr.Expr
}
