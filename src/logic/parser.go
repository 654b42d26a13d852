package logic

import "fmt"

// Parse turns a logic expression into its syntax tree.
//
// Example usage:
//
//	ast, err := logic.Parse("A AND (B OR NOT C)")
//	if err != nil {
//		log.Fatalf("failed to parse expression: %v", err)
//	}
//
// The grammar, lowest precedence first, with left-associative binary
// operators:
//
//	expr   := term (OR term)*
//	term   := factor (AND factor)*
//	factor := NOT factor | '(' expr ')' | IDENTIFIER
//
// Parsing is single-pass with one token of lookahead and no backtracking. It
// fails with a *ParseError on empty input, a missing closing parenthesis, a
// missing operand, or tokens left over after the expression; lexical failures
// surface as *LexError.
func Parse(source string) (*Node, error) {
	p := &parser{lexer: NewLexer(source)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.current.Type == TokenEOF {
		return nil, NewParseError(p.current.Pos, "empty expression")
	}

	root, err := p.expr()
	if err != nil {
		return nil, err
	}

	if p.current.Type != TokenEOF {
		return nil, NewParseError(p.current.Pos, fmt.Sprintf("unexpected %s after expression", describe(p.current)))
	}

	return root, nil
}

type parser struct {
	lexer   *Lexer
	current Token
}

func (p *parser) advance() error {
	token, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.current = token
	return nil
}

func (p *parser) expr() (*Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &Node{Op: OR, Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) term() (*Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &Node{Op: AND, Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) factor() (*Node, error) {
	switch p.current.Type {
	case TokenNot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &Node{Op: NOT, Left: operand}, nil

	case TokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, NewParseError(p.current.Pos, "missing closing parenthesis")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil

	case TokenIdentifier:
		node := &Node{Op: IDENTIFIER, Name: p.current.Value}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node, nil

	default:
		return nil, NewParseError(p.current.Pos, fmt.Sprintf("expected NOT, '(' or an identifier, got %s", describe(p.current)))
	}
}

func describe(t Token) string {
	if t.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", t.Value)
}
