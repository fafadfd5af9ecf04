package expr

import "fmt"

// EvalError reports a runtime evaluation failure: an unknown name used
// as a comparison operand, or a non-numeric operand in an ordering
// comparison. It mirrors the teacher's Kind+Message error shape.
type EvalError struct {
	Kind    string
	Message string
}

func (e EvalError) Error() string {
	return fmt.Sprintf("eval error (%v): %v", e.Kind, e.Message)
}

func unknownName(name string) error {
	return EvalError{
		Kind:    "UnknownName",
		Message: fmt.Sprintf("unknown name %q", name),
	}
}

func nonNumericComparison(op string) error {
	return EvalError{
		Kind:    "NonNumericComparison",
		Message: fmt.Sprintf("non-numeric operand in %q comparison", op),
	}
}

func unknownOperator(op string) error {
	return EvalError{
		Kind:    "UnknownOperator",
		Message: fmt.Sprintf("unknown comparison operator %q", op),
	}
}
