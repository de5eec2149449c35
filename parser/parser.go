package parser

import (
	"io"
	"strings"
	"unicode"

	"github.com/raphaelvigee/searchtable/lexer"
)

// Parse reads an identifier table from r. Rows whose identifier is not
// KeyLen bytes long are skipped and reported in Table.Warnings; a row that
// cannot be split into identifier and name aborts the parse.
//
// The returned Table is never nil: on error it holds what was parsed before
// the failing row.
func Parse(r io.Reader) (*Table, error) {
	toks, err := lexer.Tokenize(r)
	if err != nil {
		return &Table{Records: map[string]string{}}, err
	}

	return ParseTokens(toks)
}

func ParseTokens(tokens []lexer.Token) (*Table, error) {
	return (&Parser{
		tokens: tokens,
	}).parse()
}

type Parser struct {
	tokens []lexer.Token
	c      int
	ln     int
}

func (p *Parser) parse() (*Table, error) {
	tbl := &Table{Records: map[string]string{}}

	for {
		blank := p.eatall(lexer.SpaceMatcher)
		if lexer.EOFMatcher.Is(p.peekn(0)) {
			if blank {
				// A last line holding only whitespace.
				err := p.wrap("row", &MalformedRowError{Line: p.line()})
				return tbl, p.wrap("parse", err)
			}
			return tbl, nil
		}

		if err := p.row(tbl); err != nil {
			return tbl, p.wrap("parse", err)
		}
	}
}

func (p *Parser) row(tbl *Table) (rerr error) {
	defer func() {
		if rerr != nil {
			rerr = p.wrap("row", rerr)
		}
	}()

	line := p.line()

	key, err := p.expect(lexer.KeyMatcher)
	if err != nil {
		return &MalformedRowError{Line: line}
	}

	p.eatall(lexer.SpaceMatcher)

	text, err := p.expect(lexer.TextMatcher)
	if err != nil {
		return &MalformedRowError{Line: line}
	}

	// Text runs to the end of the line, so only a newline or EOF may follow.
	if _, err := p.expect(lexer.EndMatcher); err != nil {
		return err
	}

	if len(key.Value) != KeyLen {
		tbl.Warnings = append(tbl.Warnings, Warning{Line: line, Key: key.Value})
		return nil
	}

	tbl.Records[key.Value] = strings.TrimFunc(text.Value, isSpace)
	return nil
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (0x1c <= r && r <= 0x1f)
}
