package logic

import "fmt"

// LexError is returned when the input contains a character no lexical rule
// matches.
type LexError struct {
	Pos  int
	Char byte
}

// NewLexError creates a new LexError for the given position and character.
func NewLexError(pos int, char byte) error {
	return &LexError{Pos: pos, Char: char}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Pos)
}

// ParseError is returned when the token stream does not form a valid
// expression.
type ParseError struct {
	Pos int
	Msg string
}

// NewParseError creates a new ParseError at the given position.
func NewParseError(pos int, msg string) error {
	return &ParseError{Pos: pos, Msg: msg}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}
