package multiphase

import "fmt"

// GraphError reports a multi-phase graph construction or access
// failure, mirroring the teacher's graph.GraphError{Kind, Message}.
type GraphError struct {
	Kind    string
	Message string
}

func (e GraphError) Error() string {
	return fmt.Sprintf("graph error (%v): %v", e.Kind, e.Message)
}

func DuplicatePhaseID(id string) error {
	return GraphError{
		Kind:    "DuplicatePhaseID",
		Message: fmt.Sprintf("phase %q already exists", id),
	}
}

func UnknownPhase(id string) error {
	return GraphError{
		Kind:    "UnknownPhase",
		Message: fmt.Sprintf("phase %q is not known", id),
	}
}

func UnknownEndpointInPhase(phaseID, stateID string) error {
	return GraphError{
		Kind:    "UnknownEndpoint",
		Message: fmt.Sprintf("initial state %q is not a known node of phase %q", stateID, phaseID),
	}
}

func NoCurrentPhase() error {
	return GraphError{
		Kind:    "NoCurrentPhase",
		Message: "no current phase",
	}
}
