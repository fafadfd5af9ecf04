package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ritamzico/hsmgraph/internal/value"
)

// fieldShapeError marks a decode failure raised by one of this file's
// custom UnmarshalJSON methods once the surrounding JSON is otherwise
// well-formed — a value or actions object of the wrong shape. Load
// distinguishes this from a genuine syntax/IO failure so the former
// surfaces as a LoadError rather than as "not loaded" (§7).
type fieldShapeError struct {
	reason string
}

func (e fieldShapeError) Error() string { return e.reason }

// docValue decodes a single JSON-compatible scalar into a value.Value,
// inferring Int vs Float from the raw numeric token (encoding/json
// otherwise collapses every JSON number to float64), the Go-idiomatic
// analogue of the teacher's explicit {kind,value} envelope in
// internal/serialization — here there is no envelope, so the kind is
// inferred from the literal's own shape instead of a tag.
type docValue struct {
	value.Value
}

func (d *docValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fieldShapeError{"empty value"}
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		d.Value = value.String(s)
		return nil

	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return err
		}
		d.Value = value.Bool(b)
		return nil

	default:
		text := string(trimmed)
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			d.Value = value.Int(i)
			return nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fieldShapeError{fmt.Sprintf("not a JSON-compatible scalar: %q", text)}
		}
		d.Value = value.Float(f)
		return nil
	}
}

func docValuesToMap(m map[string]docValue) map[string]value.Value {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]value.Value, len(m))
	for k, v := range m {
		out[k] = v.Value
	}
	return out
}

// orderedPair is one entry of an orderedBag, preserving JSON source
// order — needed for Edge.actions, an "ordered mapping" per §4.8.
type orderedPair struct {
	Key   string
	Value docValue
}

// orderedBag decodes a JSON object into an order-preserving slice of
// pairs, streaming tokens via json.Decoder instead of letting
// encoding/json collapse the object into an unordered Go map.
type orderedBag []orderedPair

func (b *orderedBag) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fieldShapeError{"expected a JSON object"}
	}

	var pairs orderedBag
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key")
		}

		var dv docValue
		if err := dec.Decode(&dv); err != nil {
			return err
		}
		pairs = append(pairs, orderedPair{Key: key, Value: dv})
	}

	*b = pairs
	return nil
}

// docNode mirrors §4.8's Node := { id, params?, vars?, properties? }.
type docNode struct {
	ID         string              `json:"id"`
	Params     map[string]docValue `json:"params,omitempty"`
	Vars       map[string]docValue `json:"vars,omitempty"`
	Properties map[string]docValue `json:"properties,omitempty"`
}

// docEdge mirrors §4.8's Edge := { from, to, condition, actions? }.
type docEdge struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Condition string     `json:"condition"`
	Actions   orderedBag `json:"actions,omitempty"`
}

// docPhase mirrors §4.8's Phase := { id, initial_state?, nodes?, edges? }.
type docPhase struct {
	ID           string    `json:"id"`
	InitialState *string   `json:"initial_state,omitempty"`
	Nodes        []docNode `json:"nodes,omitempty"`
	Edges        []docEdge `json:"edges,omitempty"`
}

// docPhaseEdge mirrors §4.8's PhaseEdge := { from, to, condition }.
type docPhaseEdge struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Condition string `json:"condition"`
}

// document mirrors §4.8's root := { phases: [...], phase_edges?: [...] }.
// Unknown top-level and per-element keys are ignored by construction,
// since encoding/json silently drops fields with no matching tag.
type document struct {
	Phases     []docPhase     `json:"phases"`
	PhaseEdges []docPhaseEdge `json:"phase_edges,omitempty"`
}
