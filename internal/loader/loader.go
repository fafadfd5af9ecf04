// Package loader translates a parsed configuration document (§4.8)
// into an internal/multiphase.Graph. Grounded on the teacher's
// internal/serialization package — JSON decoding into intermediate
// structs, then a second pass building the live model — but the live
// model here is a multiphase.Graph instead of a
// graph.ProbabilisticGraphModel.
package loader

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/ritamzico/hsmgraph/internal/multiphase"
	"github.com/ritamzico/hsmgraph/internal/node"
	"github.com/ritamzico/hsmgraph/internal/stategraph"
)

// Load decodes and builds a multi-phase graph from r. The boolean
// result is false when the document could not even be read or
// lexically decoded as JSON ("not loaded", §4.8/§7); err is non-nil for
// every structural or semantic failure once the JSON itself parses —
// including a field whose shape is wrong, such as a non-scalar var or
// a non-object actions list — in which case no partial graph is ever
// returned, the caller discards it.
func Load(r io.Reader) (*multiphase.Graph, bool, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		var shapeErr fieldShapeError
		if errors.As(err, &shapeErr) {
			return nil, false, LoadError{Kind: "MalformedField", Message: shapeErr.Error()}
		}
		return nil, false, nil
	}

	g, err := build(doc)
	if err != nil {
		return nil, false, err
	}
	return g, true, nil
}

// LoadFile opens path and delegates to Load. A failure to open the
// file is reported the same way as a decode failure: false, nil.
func LoadFile(path string) (*multiphase.Graph, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, nil
	}
	defer f.Close()
	return Load(f)
}

func build(doc document) (*multiphase.Graph, error) {
	g := multiphase.New()

	for _, dp := range doc.Phases {
		if dp.ID == "" {
			return nil, missingField("phase", "id")
		}

		phase, err := g.AddPhase(multiphase.PhaseID(dp.ID))
		if err != nil {
			return nil, loadErrorFrom(err)
		}

		if err := addNodes(phase.Graph, dp.Nodes); err != nil {
			return nil, err
		}
		if err := addEdges(phase.Graph, dp.Edges); err != nil {
			return nil, err
		}

		if dp.InitialState != nil {
			if err := g.SetPhaseInitialState(multiphase.PhaseID(dp.ID), node.ID(*dp.InitialState)); err != nil {
				return nil, loadErrorFrom(err)
			}
		}
	}

	if err := checkUniquePhaseIDs(doc.Phases); err != nil {
		return nil, err
	}

	for _, dpe := range doc.PhaseEdges {
		if dpe.From == "" || dpe.To == "" {
			return nil, missingField("phase_edge", "from/to")
		}
		if err := g.AddPhaseEdge(multiphase.PhaseID(dpe.From), multiphase.PhaseID(dpe.To), dpe.Condition); err != nil {
			return nil, loadErrorFrom(err)
		}
	}

	if len(doc.Phases) > 0 {
		g.SetInitialPhase(multiphase.PhaseID(doc.Phases[0].ID))
	}

	return g, nil
}

func addNodes(sg *stategraph.Graph, nodes []docNode) error {
	for _, dn := range nodes {
		if dn.ID == "" {
			return missingField("node", "id")
		}
		err := sg.AddNode(
			node.ID(dn.ID),
			docValuesToMap(dn.Params),
			docValuesToMap(dn.Vars),
			docValuesToMap(dn.Properties),
		)
		if err != nil {
			return loadErrorFrom(err)
		}
	}
	return nil
}

func addEdges(sg *stategraph.Graph, edges []docEdge) error {
	for _, de := range edges {
		if de.From == "" || de.To == "" {
			return missingField("edge", "from/to")
		}

		actions := make([]stategraph.Assignment, 0, len(de.Actions))
		for _, pair := range de.Actions {
			actions = append(actions, stategraph.Assignment{Key: pair.Key, Value: pair.Value.Value})
		}

		err := sg.AddEdge(node.ID(de.From), node.ID(de.To), de.Condition, actions)
		if err != nil {
			return loadErrorFrom(err)
		}
	}
	return nil
}

func checkUniquePhaseIDs(phases []docPhase) error {
	seen := make(map[string]struct{}, len(phases))
	for _, dp := range phases {
		if _, exists := seen[dp.ID]; exists {
			return duplicatePhaseID(dp.ID)
		}
		seen[dp.ID] = struct{}{}
	}
	return nil
}

// loadErrorFrom wraps a lower-layer error (stategraph/multiphase
// GraphError, lexer/parser compile error) as a LoadError, per §7:
// every load-time failure surfaces as "load error: <reason>".
func loadErrorFrom(err error) error {
	return LoadError{Kind: "Underlying", Message: err.Error()}
}
