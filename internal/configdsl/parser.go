package configdsl

import (
	"fmt"

	"github.com/ritamzico/hsmgraph/internal/multiphase"
)

// Compile parses src as a configdsl document and builds the
// multi-phase graph it describes, in one step — the configdsl
// equivalent of loader.Load for hand-authored fixtures.
func Compile(src string) (*multiphase.Graph, error) {
	ast, err := dslParser.ParseString("", src)
	if err != nil {
		return nil, SyntaxError{Kind: "InvalidSyntax", Message: err.Error()}
	}

	g, err := Build(ast)
	if err != nil {
		return nil, fmt.Errorf("configdsl: %w", err)
	}
	return g, nil
}
