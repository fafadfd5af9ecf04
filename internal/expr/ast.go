// Package expr holds the compiled expression tree (the "AST") and its
// pure evaluator. The tree is a tagged sum of {Leaf, Not, And, Or, Cmp}
// per the polymorphic-AST design note: a single Go type carrying a Kind
// tag and a switch in Eval, rather than one Go type per variant behind
// an interface. Each edge/phase edge owns its tree exclusively (see
// internal/parser.Compile).
package expr

import "github.com/ritamzico/hsmgraph/internal/value"

// Kind tags which fields of Expr are meaningful.
type Kind int

const (
	LeafKind Kind = iota
	NotKind
	AndKind
	OrKind
	CmpKind
)

// LeafVariant distinguishes a literal leaf from an identifier leaf.
type LeafVariant int

const (
	LiteralLeaf LeafVariant = iota
	IdentLeaf
)

// Expr is one node of a compiled condition tree.
type Expr struct {
	Kind Kind

	// Leaf
	Leaf    LeafVariant
	Literal value.Value
	Name    string

	// Not: Child. And/Or: Left, Right. Cmp: Left, Right, Op.
	Child *Expr
	Left  *Expr
	Right *Expr
	Op    string
}

func Literal(v value.Value) *Expr {
	return &Expr{Kind: LeafKind, Leaf: LiteralLeaf, Literal: v}
}

func Ident(name string) *Expr {
	return &Expr{Kind: LeafKind, Leaf: IdentLeaf, Name: name}
}

func Not(child *Expr) *Expr {
	return &Expr{Kind: NotKind, Child: child}
}

func And(left, right *Expr) *Expr {
	return &Expr{Kind: AndKind, Left: left, Right: right}
}

func Or(left, right *Expr) *Expr {
	return &Expr{Kind: OrKind, Left: left, Right: right}
}

func Cmp(op string, left, right *Expr) *Expr {
	return &Expr{Kind: CmpKind, Op: op, Left: left, Right: right}
}
