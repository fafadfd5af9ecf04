package loader

import "fmt"

// LoadError reports a structural or semantic load failure — missing
// required field, duplicate id, unknown endpoint — mirroring the
// teacher's Kind+Message error shape. I/O failures are reported
// separately as a plain "not loaded" boolean, per §4.8/§7.
type LoadError struct {
	Kind    string
	Message string
}

func (e LoadError) Error() string {
	return fmt.Sprintf("load error: %v", e.Message)
}

func missingField(context, field string) error {
	return LoadError{
		Kind:    "MissingField",
		Message: fmt.Sprintf("%s: missing required field %q", context, field),
	}
}

func duplicatePhaseID(id string) error {
	return LoadError{
		Kind:    "DuplicatePhaseID",
		Message: fmt.Sprintf("duplicate phase id %q", id),
	}
}
