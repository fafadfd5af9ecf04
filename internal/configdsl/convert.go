package configdsl

import (
	"github.com/ritamzico/hsmgraph/internal/multiphase"
	"github.com/ritamzico/hsmgraph/internal/node"
	"github.com/ritamzico/hsmgraph/internal/stategraph"
	"github.com/ritamzico/hsmgraph/internal/value"
)

func convertPropValue(ast *PropValueAST) value.Value {
	switch {
	case ast.Str != nil:
		return value.String(*ast.Str)
	case ast.Float != nil:
		return value.Float(*ast.Float)
	case ast.Int != nil:
		return value.Int(*ast.Int)
	case ast.True:
		return value.Bool(true)
	case ast.False:
		return value.Bool(false)
	default:
		return value.Value{}
	}
}

func convertProps(props []*PropAST) map[string]value.Value {
	if len(props) == 0 {
		return nil
	}
	out := make(map[string]value.Value, len(props))
	for _, p := range props {
		out[p.Key] = convertPropValue(p.Value)
	}
	return out
}

func convertActions(actions []*AssignmentAST) []stategraph.Assignment {
	out := make([]stategraph.Assignment, 0, len(actions))
	for _, a := range actions {
		out = append(out, stategraph.Assignment{Key: a.Key, Value: convertPropValue(a.Value)})
	}
	return out
}

// Build translates a parsed document into a freshly constructed
// multiphase.Graph, the way internal/dsl.Statement.Execute mutates a
// graph.ProbabilisticGraphModel directly rather than round-tripping
// through an intermediate document.
func Build(ast *DocumentAST) (*multiphase.Graph, error) {
	g := multiphase.New()

	for _, pa := range ast.Phases {
		phase, err := g.AddPhase(multiphase.PhaseID(pa.ID))
		if err != nil {
			return nil, err
		}

		for _, na := range pa.Nodes {
			err := phase.Graph.AddNode(
				node.ID(na.ID),
				convertProps(na.Params),
				convertProps(na.Vars),
				convertProps(na.Properties),
			)
			if err != nil {
				return nil, err
			}
		}

		for _, ea := range pa.Edges {
			err := phase.Graph.AddEdge(
				node.ID(ea.From),
				node.ID(ea.To),
				ea.Condition,
				convertActions(ea.Actions),
			)
			if err != nil {
				return nil, err
			}
		}

		if pa.InitialState != nil {
			if err := g.SetPhaseInitialState(multiphase.PhaseID(pa.ID), node.ID(*pa.InitialState)); err != nil {
				return nil, err
			}
		}
	}

	for _, pea := range ast.PhaseEdges {
		err := g.AddPhaseEdge(multiphase.PhaseID(pea.From), multiphase.PhaseID(pea.To), pea.Condition)
		if err != nil {
			return nil, err
		}
	}

	if len(ast.Phases) > 0 {
		g.SetInitialPhase(multiphase.PhaseID(ast.Phases[0].ID))
	}

	return g, nil
}
