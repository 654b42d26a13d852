package logic

import "fmt"

// TokenType identifies the kind of a lexical token.
type TokenType int

const (
	TokenIdentifier TokenType = iota
	TokenAnd
	TokenOr
	TokenNot
	TokenLParen
	TokenRParen
	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenNot:
		return "NOT"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenEOF:
		return "EOF"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a single lexical token together with its position in the source
// string. Pos counts bytes from the start of the input.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}
