package lexer

import "fmt"

// LexError reports a malformed token, mirroring the teacher's
// Kind+Message typed-error shape (graph.GraphError / dsl.SyntaxError).
type LexError struct {
	Kind    string
	Message string
	Pos     int
}

func (e LexError) Error() string {
	return fmt.Sprintf("lex error (%v) at %d: %v", e.Kind, e.Pos, e.Message)
}

func badLexeme(pos int, text string) error {
	return LexError{
		Kind:    "BadLexeme",
		Message: fmt.Sprintf("bad lexeme %q", text),
		Pos:     pos,
	}
}

func unexpectedChar(pos int, r rune) error {
	return LexError{
		Kind:    "UnexpectedCharacter",
		Message: fmt.Sprintf("unexpected character %q", r),
		Pos:     pos,
	}
}

func unterminatedString(pos int) error {
	return LexError{
		Kind:    "UnterminatedString",
		Message: "unterminated string literal",
		Pos:     pos,
	}
}
