package expr

import "github.com/ritamzico/hsmgraph/internal/value"

// NodeView is the read-only surface the evaluator needs from a node:
// lookup into the vars bag and the properties bag. internal/node.Node
// implements this; the evaluator package never imports internal/node
// so it cannot accidentally acquire write access.
type NodeView interface {
	Var(name string) (value.Value, bool)
	Property(name string) (value.Value, bool)
}

const propertiesPrefix = "properties."

// Eval evaluates e in boolean context against node. It never mutates
// node: the evaluator is pure.
func Eval(e *Expr, node NodeView) (bool, error) {
	switch e.Kind {
	case LeafKind:
		v, ok := lookupLeaf(e, node)
		if !ok {
			return false, nil
		}
		return v.Truthy(), nil

	case NotKind:
		child, err := Eval(e.Child, node)
		if err != nil {
			return false, err
		}
		return !child, nil

	case AndKind:
		left, err := Eval(e.Left, node)
		if err != nil {
			return false, err
		}
		if !left {
			return false, nil
		}
		return Eval(e.Right, node)

	case OrKind:
		left, err := Eval(e.Left, node)
		if err != nil {
			return false, err
		}
		if left {
			return true, nil
		}
		return Eval(e.Right, node)

	case CmpKind:
		return evalCmp(e, node)

	default:
		return false, unknownOperator("<invalid>")
	}
}

// lookupLeaf resolves a leaf to its Value. For literals this always
// succeeds; for identifiers, absence is reported via ok=false rather
// than an error, since boolean-position absence is not an error.
func lookupLeaf(e *Expr, node NodeView) (value.Value, bool) {
	if e.Leaf == LiteralLeaf {
		return e.Literal, true
	}
	if stripped, ok := cutPropertiesPrefix(e.Name); ok {
		return node.Property(stripped)
	}
	return node.Var(e.Name)
}

func cutPropertiesPrefix(name string) (string, bool) {
	if len(name) > len(propertiesPrefix) && name[:len(propertiesPrefix)] == propertiesPrefix {
		return name[len(propertiesPrefix):], true
	}
	return "", false
}

// operandValue extracts the Value of a Cmp operand: a leaf yields its
// Value directly (raising unknownName if an identifier leaf is
// absent, since comparison position is not boolean position); a
// non-leaf is evaluated as boolean and wrapped.
func operandValue(e *Expr, node NodeView) (value.Value, error) {
	if e.Kind == LeafKind {
		v, ok := lookupLeaf(e, node)
		if !ok {
			return value.Value{}, unknownName(e.Name)
		}
		return v, nil
	}

	b, err := Eval(e, node)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(b), nil
}

func evalCmp(e *Expr, node NodeView) (bool, error) {
	left, err := operandValue(e.Left, node)
	if err != nil {
		return false, err
	}
	right, err := operandValue(e.Right, node)
	if err != nil {
		return false, err
	}

	switch e.Op {
	case "==":
		return value.Equal(left, right), nil
	case "!=":
		return !value.Equal(left, right), nil
	case "<", "<=", ">", ">=":
		cmp, ok := value.Compare(left, right)
		if !ok {
			return false, nonNumericComparison(e.Op)
		}
		switch e.Op {
		case "<":
			return cmp < 0, nil
		case "<=":
			return cmp <= 0, nil
		case ">":
			return cmp > 0, nil
		case ">=":
			return cmp >= 0, nil
		}
	}
	return false, unknownOperator(e.Op)
}
