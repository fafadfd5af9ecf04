// Package value implements the tagged scalar shared by every bag in the
// graph (params, vars, properties) and by the expression evaluator.
package value

import "fmt"

// Kind tags which field of a Value is meaningful.
type Kind int

const (
	IntKind Kind = iota
	FloatKind
	BoolKind
	StringKind
)

func (k Kind) String() string {
	switch k {
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case BoolKind:
		return "bool"
	case StringKind:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a tagged scalar: exactly one of I, F, B, S is meaningful,
// selected by Kind.
type Value struct {
	Kind Kind
	I    int64
	F    float64
	B    bool
	S    string
}

func Int(i int64) Value    { return Value{Kind: IntKind, I: i} }
func Float(f float64) Value { return Value{Kind: FloatKind, F: f} }
func Bool(b bool) Value    { return Value{Kind: BoolKind, B: b} }
func String(s string) Value { return Value{Kind: StringKind, S: s} }

// ToNumber widens Int and Float to float64. It fails for Bool and String.
func (v Value) ToNumber() (float64, bool) {
	switch v.Kind {
	case IntKind:
		return float64(v.I), true
	case FloatKind:
		return v.F, true
	default:
		return 0, false
	}
}

// ToBool succeeds only for Bool.
func (v Value) ToBool() (bool, bool) {
	if v.Kind != BoolKind {
		return false, false
	}
	return v.B, true
}

// ToString succeeds only for String.
func (v Value) ToString() (string, bool) {
	if v.Kind != StringKind {
		return "", false
	}
	return v.S, true
}

// Truthy applies the §4.1 truthiness rule: numeric values are true iff
// nonzero, strings are true iff nonempty, booleans carry their own value.
func (v Value) Truthy() bool {
	switch v.Kind {
	case IntKind:
		return v.I != 0
	case FloatKind:
		return v.F != 0
	case BoolKind:
		return v.B
	case StringKind:
		return v.S != ""
	default:
		return false
	}
}

// Equal implements §4.1 equality: same-tag equality is structural;
// integer-vs-float equality widens both to float64; every other
// cross-tag pair is unequal.
func Equal(a, b Value) bool {
	if a.Kind == b.Kind {
		switch a.Kind {
		case IntKind:
			return a.I == b.I
		case FloatKind:
			return a.F == b.F
		case BoolKind:
			return a.B == b.B
		case StringKind:
			return a.S == b.S
		}
	}

	an, aok := a.ToNumber()
	bn, bok := b.ToNumber()
	if aok && bok {
		return an == bn
	}

	return false
}

// Compare implements §4.1 ordering: both operands must coerce to number.
// Returns -1, 0, or 1 when comparable.
func Compare(a, b Value) (int, bool) {
	an, aok := a.ToNumber()
	bn, bok := b.ToNumber()
	if !aok || !bok {
		return 0, false
	}
	switch {
	case an < bn:
		return -1, true
	case an > bn:
		return 1, true
	default:
		return 0, true
	}
}

func (v Value) String() string {
	switch v.Kind {
	case IntKind:
		return fmt.Sprintf("%d", v.I)
	case FloatKind:
		return fmt.Sprintf("%g", v.F)
	case BoolKind:
		return fmt.Sprintf("%t", v.B)
	case StringKind:
		return v.S
	default:
		return "<invalid value>"
	}
}
