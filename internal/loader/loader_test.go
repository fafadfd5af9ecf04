package loader

import (
	"strings"
	"testing"

	"github.com/ritamzico/hsmgraph/internal/multiphase"
)

const s1Doc = `{
  "phases": [
    {
      "id": "P",
      "initial_state": "A",
      "nodes": [
        {"id": "A"},
        {"id": "B"}
      ],
      "edges": [
        {"from": "A", "to": "B", "condition": "true"}
      ]
    }
  ]
}`

func TestLoadS1(t *testing.T) {
	g, ok, err := Load(strings.NewReader(s1Doc))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatal("Load reported not-loaded for valid document")
	}

	id, err := g.CurrentPhaseID()
	if err != nil || id != "P" {
		t.Fatalf("expected current phase P, got %v, %v", id, err)
	}

	stateID, err := g.CurrentStateID()
	if err != nil || stateID != "A" {
		t.Fatalf("expected current state A, got %v, %v", stateID, err)
	}

	res, err := g.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if res.StateID != "B" || !res.StateChanged {
		t.Errorf("expected step to B, got %+v", res)
	}
}

func TestLoadMalformedJSONReportsNotLoaded(t *testing.T) {
	_, ok, err := Load(strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("malformed JSON should not raise a LoadError, got %v", err)
	}
	if ok {
		t.Fatal("malformed JSON should report not-loaded")
	}
}

func TestLoadDuplicateNodeID(t *testing.T) {
	doc := `{"phases": [{"id": "P", "nodes": [{"id": "A"}, {"id": "A"}]}]}`
	_, ok, err := Load(strings.NewReader(doc))
	if ok || err == nil {
		t.Fatal("expected a load error for duplicate node id")
	}
}

func TestLoadUnknownEdgeEndpoint(t *testing.T) {
	doc := `{"phases": [{"id": "P", "nodes": [{"id": "A"}],
		"edges": [{"from": "A", "to": "Nowhere", "condition": "true"}]}]}`
	_, ok, err := Load(strings.NewReader(doc))
	if ok || err == nil {
		t.Fatal("expected a load error for unknown edge endpoint")
	}
}

// S6: a phase edge referring to an unknown phase fails to load and
// leaves nothing behind.
func TestLoadS6_UnknownPhaseEdgeTarget(t *testing.T) {
	doc := `{
		"phases": [{"id": "Main", "nodes": [{"id": "A"}]}],
		"phase_edges": [{"from": "Main", "to": "Nowhere", "condition": "true"}]
	}`
	g, ok, err := Load(strings.NewReader(doc))
	if ok || err == nil {
		t.Fatal("expected a load error for unknown phase edge target")
	}
	if g != nil {
		t.Error("a failed load must not return a partially built graph")
	}
}

func TestLoadTwoPhasesSameNodeIDScopedPerPhase(t *testing.T) {
	doc := `{
		"phases": [
			{"id": "P1", "nodes": [{"id": "A"}]},
			{"id": "P2", "nodes": [{"id": "A"}]}
		]
	}`
	g, ok, err := Load(strings.NewReader(doc))
	if err != nil || !ok {
		t.Fatalf("two phases may share a node id, got ok=%v err=%v", ok, err)
	}
	if _, found := g.Phase(multiphase.PhaseID("P1")); !found {
		t.Error("expected phase P1")
	}
	if _, found := g.Phase(multiphase.PhaseID("P2")); !found {
		t.Error("expected phase P2")
	}
}

func TestLoadDuplicatePhaseID(t *testing.T) {
	doc := `{
		"phases": [
			{"id": "P", "nodes": [{"id": "A"}]},
			{"id": "P", "nodes": [{"id": "B"}]}
		]
	}`
	_, ok, err := Load(strings.NewReader(doc))
	if ok || err == nil {
		t.Fatal("expected a load error for duplicate phase id")
	}
}

func TestLoadNodeWithVarsParamsProperties(t *testing.T) {
	doc := `{
		"phases": [{
			"id": "P",
			"initial_state": "A",
			"nodes": [{
				"id": "A",
				"params": {"label": "start"},
				"vars": {"count": 0, "enabled": true},
				"properties": {"name": "TestNode", "weight": 1.5}
			}]
		}]
	}`
	g, ok, err := Load(strings.NewReader(doc))
	if err != nil || !ok {
		t.Fatalf("Load failed: ok=%v err=%v", ok, err)
	}

	n, err := g.CurrentNode()
	if err != nil {
		t.Fatalf("CurrentNode failed: %v", err)
	}

	v, ok2 := n.Var("count")
	if !ok2 || v.I != 0 {
		t.Errorf("expected vars.count == 0 (int), got %v, %v", v, ok2)
	}

	v, ok2 = n.Property("weight")
	if !ok2 || v.F != 1.5 {
		t.Errorf("expected properties.weight == 1.5 (float), got %v, %v", v, ok2)
	}

	v, ok2 = n.Param("label")
	if !ok2 || v.S != "start" {
		t.Errorf("expected params.label == \"start\", got %v, %v", v, ok2)
	}
}

func TestLoadEdgeActionsPreserveOrder(t *testing.T) {
	doc := `{
		"phases": [{
			"id": "P",
			"initial_state": "A",
			"nodes": [{"id": "A"}, {"id": "B"}],
			"edges": [{
				"from": "A", "to": "B", "condition": "true",
				"actions": {"x": 1, "y": 2, "z": 3}
			}]
		}]
	}`
	g, ok, err := Load(strings.NewReader(doc))
	if err != nil || !ok {
		t.Fatalf("Load failed: ok=%v err=%v", ok, err)
	}

	res, err := g.Step()
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if res.StateID != "B" {
		t.Fatalf("expected transition to B, got %v", res.StateID)
	}

	n, _ := g.CurrentNode()
	for key, want := range map[string]int64{"x": 1, "y": 2, "z": 3} {
		v, ok := n.Var(key)
		if !ok || v.I != want {
			t.Errorf("var %q = %v, want %d", key, v, want)
		}
	}
}

func TestLoadMalformedVarValueIsLoadError(t *testing.T) {
	doc := `{"phases": [{"id": "P", "nodes": [{"id": "A", "vars": {"x": null}}]}]}`
	_, ok, err := Load(strings.NewReader(doc))
	if ok {
		t.Fatal("a node with a null var should not load successfully")
	}
	if err == nil {
		t.Fatal("expected a LoadError for a var of unsupported JSON shape, got not-loaded instead")
	}
	if _, isLoadErr := err.(LoadError); !isLoadErr {
		t.Errorf("expected a LoadError, got %T: %v", err, err)
	}
}

func TestLoadMalformedActionsIsLoadError(t *testing.T) {
	doc := `{
		"phases": [{"id": "P", "nodes": [{"id": "A"}, {"id": "B"}],
			"edges": [{"from": "A", "to": "B", "condition": "true", "actions": [1, 2, 3]}]}]
	}`
	_, ok, err := Load(strings.NewReader(doc))
	if ok {
		t.Fatal("an edge with a non-object actions field should not load successfully")
	}
	if err == nil {
		t.Fatal("expected a LoadError for actions of unsupported JSON shape, got not-loaded instead")
	}
	if _, isLoadErr := err.(LoadError); !isLoadErr {
		t.Errorf("expected a LoadError, got %T: %v", err, err)
	}
}

func TestLoadGenuinelyMalformedJSONStillReportsNotLoaded(t *testing.T) {
	_, ok, err := Load(strings.NewReader(`{"phases": [}`))
	if err != nil {
		t.Fatalf("syntactically invalid JSON should not raise a LoadError, got %v", err)
	}
	if ok {
		t.Fatal("syntactically invalid JSON should report not-loaded")
	}
}

func TestLoadUnknownKeysIgnored(t *testing.T) {
	doc := `{
		"phases": [{"id": "P", "nodes": [{"id": "A", "position": {"x": 1, "y": 2}}]}],
		"editor_metadata": {"zoom": 1.5}
	}`
	_, ok, err := Load(strings.NewReader(doc))
	if err != nil || !ok {
		t.Fatalf("unknown keys should be ignored, got ok=%v err=%v", ok, err)
	}
}
