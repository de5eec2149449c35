package parser

import (
	"github.com/raphaelvigee/searchtable/lexer"
)

func (p *Parser) advance() lexer.Token {
	if p.c > len(p.tokens)-1 {
		return lexer.NilToken
	}

	t := p.tokens[p.c]
	p.c++
	if lexer.NlMatcher.Is(t) {
		p.ln++
	}
	return t
}

func (p *Parser) peekn(i int) lexer.Token {
	if p.c+i > len(p.tokens)-1 {
		return lexer.NilToken
	}

	return p.tokens[p.c+i]
}

// line returns the 1-based line the cursor is on. Lines are counted from Nl
// tokens since the lexer positions only advance on '\n'.
func (p *Parser) line() int {
	return p.ln + 1
}

func (p *Parser) wrap(name string, err error) error {
	return Wrap(name, err)
}

func (p *Parser) expect(matcher lexer.Matcher) (lexer.Token, error) {
	t := p.advance()
	return t, matcher.Validate(t)
}

func (p *Parser) eat(matcher lexer.Matcher) bool {
	if matcher.Is(p.peekn(0)) {
		p.advance()
		return true
	}

	return false
}

func (p *Parser) eatall(matcher lexer.Matcher) bool {
	if p.eat(matcher) {
		for p.eat(matcher) {
		}
		return true
	}

	return false
}
