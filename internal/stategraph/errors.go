package stategraph

import "fmt"

// GraphError reports a single-phase graph construction or access
// failure, mirroring the teacher's graph.GraphError{Kind, Message}.
type GraphError struct {
	Kind    string
	Message string
}

func (e GraphError) Error() string {
	return fmt.Sprintf("graph error (%v): %v", e.Kind, e.Message)
}

func DuplicateID(id string) error {
	return GraphError{
		Kind:    "DuplicateID",
		Message: fmt.Sprintf("node %q already exists", id),
	}
}

func UnknownEndpoint(id string) error {
	return GraphError{
		Kind:    "UnknownEndpoint",
		Message: fmt.Sprintf("node %q is not known in this phase", id),
	}
}

func NoCurrentState() error {
	return GraphError{
		Kind:    "NoCurrentState",
		Message: "no current state",
	}
}
