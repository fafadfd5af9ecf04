// Package configdsl is a line-oriented authoring shorthand for the
// configuration document of §4.8 — a human-friendly alternative to
// writing JSON by hand for small fixtures and examples. It compiles
// straight to an internal/multiphase.Graph, the same way the teacher's
// internal/dsl package executes straight against a
// graph.ProbabilisticGraphModel rather than through
// internal/serialization. It is not on the path any loader.Load
// document takes; it is a second, optional way to arrive at the same
// model.
package configdsl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var dslLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(PHASE|INITIAL|NODE|EDGE|PHASEEDGE|TO|WHEN|SET|PARAMS|VARS|PROPERTIES|TRUE|FALSE)\b`},
	{Name: "Float", Pattern: `-?\d+\.\d+`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "String", Pattern: `"([^"\\]|\\.)*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{}:,=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// DocumentAST is the top-level AST node: zero or more phases followed
// by zero or more phase edges, mirroring §4.8's root shape.
type DocumentAST struct {
	Phases     []*PhaseAST     `parser:"@@*"`
	PhaseEdges []*PhaseEdgeAST `parser:"@@*"`
}

// PhaseAST: PHASE <id> (INITIAL <id>)? { <node>* <edge>* }
type PhaseAST struct {
	ID           string      `parser:"\"PHASE\" @Ident"`
	InitialState *string     `parser:"( \"INITIAL\" @Ident )?"`
	Nodes        []*NodeAST  `parser:"\"{\" @@*"`
	Edges        []*EdgeAST  `parser:"@@* \"}\""`
}

// NodeAST: NODE <id> (PARAMS Props)? (VARS Props)? (PROPERTIES Props)?
type NodeAST struct {
	ID         string     `parser:"\"NODE\" @Ident"`
	Params     []*PropAST `parser:"( \"PARAMS\" \"{\" ( @@ ( \",\" @@ )* )? \"}\" )?"`
	Vars       []*PropAST `parser:"( \"VARS\" \"{\" ( @@ ( \",\" @@ )* )? \"}\" )?"`
	Properties []*PropAST `parser:"( \"PROPERTIES\" \"{\" ( @@ ( \",\" @@ )* )? \"}\" )?"`
}

// PropAST: <key> : <value>
type PropAST struct {
	Key   string        `parser:"@Ident \":\""`
	Value *PropValueAST `parser:"@@"`
}

// PropValueAST is a typed property/action value literal.
type PropValueAST struct {
	Str   *string  `parser:"  @String"`
	Float *float64 `parser:"| @Float"`
	Int   *int64   `parser:"| @Int"`
	True  bool     `parser:"| @\"TRUE\""`
	False bool     `parser:"| @\"FALSE\""`
}

// EdgeAST: EDGE <from> TO <to> WHEN <condition> (SET <assignment> (, <assignment>)*)?
type EdgeAST struct {
	From      string            `parser:"\"EDGE\" @Ident"`
	To        string            `parser:"\"TO\" @Ident"`
	Condition string            `parser:"\"WHEN\" @String"`
	Actions   []*AssignmentAST  `parser:"( \"SET\" @@ ( \",\" @@ )* )?"`
}

// AssignmentAST: <key> = <value>
type AssignmentAST struct {
	Key   string        `parser:"@Ident \"=\""`
	Value *PropValueAST `parser:"@@"`
}

// PhaseEdgeAST: PHASEEDGE <from> TO <to> WHEN <condition>
type PhaseEdgeAST struct {
	From      string `parser:"\"PHASEEDGE\" @Ident"`
	To        string `parser:"\"TO\" @Ident"`
	Condition string `parser:"\"WHEN\" @String"`
}

var dslParser = participle.MustBuild[DocumentAST](
	participle.Lexer(dslLexer),
	participle.CaseInsensitive("Keyword"),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)
