package configdsl

import "fmt"

// SyntaxError reports a configdsl grammar failure, mirroring the
// teacher's dsl.SyntaxError{Kind, Message} shape.
type SyntaxError struct {
	Kind    string
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("configdsl syntax error (%v): %v", e.Kind, e.Message)
}
