package lexer

import (
	"fmt"
	"strings"
)

type Matcher interface {
	Is(t Token) bool
	Validate(t Token) error
}

func NewMatcher(name string) Matcher {
	return crit(name)
}

// Predefined matchers for every token the table lexer emits.
var (
	KeyMatcher   = NewMatcher("Key")
	TextMatcher  = NewMatcher("Text")
	SpaceMatcher = NewMatcher("Space")
	NlMatcher    = NewMatcher("Nl")
	EOFMatcher   = NewMatcher("EOF")
	// EndMatcher accepts whatever may terminate a row.
	EndMatcher = NewMultiMatcher(NlMatcher, EOFMatcher)
)

type crit string

func (c crit) Is(t Token) bool {
	if c == "EOF" {
		return t.Type == EOF
	}
	return t.Type == Symbol(string(c))
}

func (c crit) Validate(t Token) error {
	if !c.Is(t) {
		return fmt.Errorf("expected `%v`, got %v", string(c), t)
	}
	return nil
}

type mcrit []Matcher

func (mc mcrit) Is(t Token) bool {
	for _, c := range mc {
		if c.Is(t) {
			return true
		}
	}
	return false
}

func (mc mcrit) Validate(t Token) error {
	if !mc.Is(t) {
		names := make([]string, len(mc))
		for i, c := range mc {
			names[i] = fmt.Sprintf("%v", c)
		}
		return fmt.Errorf("expected one of [%v], got %v", strings.Join(names, " "), t)
	}
	return nil
}

func NewMultiMatcher(crits ...Matcher) Matcher {
	return mcrit(crits)
}
