// Package parser implements the recursive-descent grammar of §4.3,
// turning a lexer.Token stream into a compiled internal/expr tree.
package parser

import (
	"strconv"

	"github.com/ritamzico/hsmgraph/internal/expr"
	"github.com/ritamzico/hsmgraph/internal/lexer"
	"github.com/ritamzico/hsmgraph/internal/value"
)

type parser struct {
	toks []lexer.Token
	pos  int
}

// Compile lexes and parses src, returning the compiled expression tree
// that internal/expr.Eval can evaluate. Each call produces a freshly
// owned tree; there is no sharing between edges (see Design Note on
// compiled-expression ownership).
func Compile(src string) (*expr.Expr, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	tree, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Kind != lexer.End {
		return nil, trailingInput(tok.Pos, tok.Text)
	}

	return tree, nil
}

func (p *parser) peek() lexer.Token {
	return p.toks[p.pos]
}

func (p *parser) advance() lexer.Token {
	tok := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) parseOr() (*expr.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.Operator && p.peek().Text == "||" {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = expr.Or(left, right)
	}

	return left, nil
}

func (p *parser) parseAnd() (*expr.Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.Operator && p.peek().Text == "&&" {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = expr.And(left, right)
	}

	return left, nil
}

func (p *parser) parseNot() (*expr.Expr, error) {
	if p.peek().Kind == lexer.Operator && p.peek().Text == "!" {
		p.advance()
		child, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return expr.Not(child), nil
	}
	return p.parseCmp()
}

var cmpOps = map[string]bool{
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
}

func (p *parser) parseCmp() (*expr.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	tok := p.peek()
	if tok.Kind == lexer.Operator && cmpOps[tok.Text] {
		op := tok.Text
		p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return expr.Cmp(op, left, right), nil
	}

	return left, nil
}

func (p *parser) parsePrimary() (*expr.Expr, error) {
	tok := p.peek()

	switch tok.Kind {
	case lexer.LParen:
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek().Kind != lexer.RParen {
			return nil, unmatchedParen(tok.Pos)
		}
		p.advance()
		return inner, nil

	case lexer.Boolean:
		p.advance()
		return expr.Literal(value.Bool(tok.Text == "true")), nil

	case lexer.Number:
		p.advance()
		return numberLiteral(tok)

	case lexer.String:
		p.advance()
		return expr.Literal(value.String(tok.Text)), nil

	case lexer.Ident:
		p.advance()
		return expr.Ident(tok.Text), nil

	default:
		return nil, unexpectedToken(tok.Pos, "expected a value, identifier, or '('")
	}
}

func numberLiteral(tok lexer.Token) (*expr.Expr, error) {
	for _, r := range tok.Text {
		if r == '.' {
			f, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return nil, unexpectedToken(tok.Pos, "malformed float literal "+tok.Text)
			}
			return expr.Literal(value.Float(f)), nil
		}
	}

	i, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		return nil, unexpectedToken(tok.Pos, "malformed integer literal "+tok.Text)
	}
	return expr.Literal(value.Int(i)), nil
}
