package lexer

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/alecthomas/participle/v2/lexer/stateful"
	"github.com/pkg/errors"
)

var _def *stateful.Definition

// space is every separator a row may use between identifier and name,
// line breaks excluded: ASCII and C1 blanks, the 0x1c-0x1f separators and
// all of Unicode category Z.
const space = `\t\v\f \x{1c}-\x{1f}\x{85}\p{Z}`

func init() {
	Nl := stateful.Rule{Name: `Nl`, Pattern: `(?:\r\n|\r|\n)`, Action: nil}
	Space := stateful.Rule{Name: `Space`, Pattern: `[` + space + `]+`, Action: nil}

	_def = stateful.Must(stateful.Rules{
		// A row starts with its identifier, everything after the first
		// run of whitespace belongs to the name.
		"Root": {
			Nl,
			Space,
			{Name: `Key`, Pattern: `[^\r\n` + space + `]+`, Action: stateful.Push("Name")},
		},
		"Name": {
			{Name: `Nl`, Pattern: Nl.Pattern, Action: stateful.Pop()},
			Space,
			{Name: `Text`, Pattern: `[^\r\n]+`, Action: nil},
		},
	})
}

// Tokenize reads the whole table from r.
func Tokenize(r io.Reader) ([]Token, error) {
	lex, err := Def().Lex("", r)
	if err != nil {
		return nil, errors.Wrap(err, "lex")
	}

	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrap(err, "lex")
	}

	mytoks := make([]Token, len(toks))
	for i, t := range toks {
		mytoks[i] = Token(t)
	}

	return mytoks, nil
}

func Def() *stateful.Definition {
	return _def
}

func Symbols() map[string]rune {
	return Def().Symbols()
}

func Symbol(name string) rune {
	t := Symbols()[name]
	if t == 0 {
		panic("unknown symbol: " + name)
	}
	return t
}

var typeToName map[rune]string

func init() {
	typeToName = map[rune]string{}
	for s, k := range Symbols() {
		typeToName[k] = s
	}
}

func SymbolName(t rune) string {
	return typeToName[t]
}
