package lexer

import "testing"

func tokenKinds(t *testing.T, src string) []Kind {
	t.Helper()
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", src, err)
	}
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestTokenizeOperators(t *testing.T) {
	toks, err := Tokenize("a && b || !c == d != e <= f >= g < h > i")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	var ops []string
	for _, tok := range toks {
		if tok.Kind == Operator {
			ops = append(ops, tok.Text)
		}
	}

	want := []string{"&&", "||", "!", "==", "!=", "<=", ">=", "<", ">"}
	if len(ops) != len(want) {
		t.Fatalf("got %d operators, want %d: %v", len(ops), len(want), ops)
	}
	for i, w := range want {
		if ops[i] != w {
			t.Errorf("operator %d = %q, want %q", i, ops[i], w)
		}
	}
}

func TestTokenizeBoolean(t *testing.T) {
	toks, err := Tokenize("true false")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if toks[0].Kind != Boolean || toks[1].Kind != Boolean {
		t.Errorf("true/false should lex as Boolean, got %v %v", toks[0].Kind, toks[1].Kind)
	}
}

func TestTokenizeDottedIdentifier(t *testing.T) {
	toks, err := Tokenize("properties.name")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(toks) != 2 || toks[0].Kind != Ident || toks[0].Text != "properties.name" {
		t.Errorf("expected single dotted identifier token, got %+v", toks)
	}
}

func TestTokenizeNegativeNumber(t *testing.T) {
	toks, err := Tokenize("x > -1")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	var numTok Token
	for _, tok := range toks {
		if tok.Kind == Number {
			numTok = tok
		}
	}
	if numTok.Text != "-1" {
		t.Errorf("expected negative number literal -1, got %q", numTok.Text)
	}
}

func TestTokenizeFloat(t *testing.T) {
	toks, err := Tokenize("3.14")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if toks[0].Kind != Number || toks[0].Text != "3.14" {
		t.Errorf("expected float number token, got %+v", toks[0])
	}
}

func TestTokenizeStringLiteral(t *testing.T) {
	toks, err := Tokenize(`"hello world"`)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if toks[0].Kind != String || toks[0].Text != "hello world" {
		t.Errorf("expected string literal, got %+v", toks[0])
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	if err == nil {
		t.Fatal("expected error for unterminated string")
	}
	if _, ok := err.(LexError); !ok {
		t.Errorf("expected LexError, got %T", err)
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("a & b")
	if err == nil {
		t.Fatal("expected error for single &")
	}
}

func TestTokenizeParens(t *testing.T) {
	kinds := tokenKinds(t, "(a)")
	want := []Kind{LParen, Ident, RParen, End}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}
