package logic

// Lexer scans a logic expression into tokens, one call at a time. It holds no
// state beyond the scan position, so a fresh Lexer per parse is cheap.
type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

func isIdentifierStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isIdentifierChar(c byte) bool {
	return isIdentifierStart(c) || ('0' <= c && c <= '9')
}

// Next returns the next token in the input, skipping spaces, or a TokenEOF
// token once the input is exhausted. It fails with a *LexError when no rule
// matches the character at the current position.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.input) && l.input[l.pos] == ' ' {
		l.pos++
	}

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.pos}, nil
	}

	start := l.pos
	switch c := l.input[l.pos]; {
	case c == '(':
		l.pos++
		return Token{Type: TokenLParen, Value: "(", Pos: start}, nil

	case c == ')':
		l.pos++
		return Token{Type: TokenRParen, Value: ")", Pos: start}, nil

	case isIdentifierStart(c):
		for l.pos < len(l.input) && isIdentifierChar(l.input[l.pos]) {
			l.pos++
		}
		word := l.input[start:l.pos]

		// keywords only match a whole identifier run, so ANDY lexes as an
		// identifier, not AND followed by Y
		switch word {
		case "AND":
			return Token{Type: TokenAnd, Value: word, Pos: start}, nil
		case "OR":
			return Token{Type: TokenOr, Value: word, Pos: start}, nil
		case "NOT":
			return Token{Type: TokenNot, Value: word, Pos: start}, nil
		}
		return Token{Type: TokenIdentifier, Value: word, Pos: start}, nil

	default:
		return Token{}, NewLexError(start, c)
	}
}
