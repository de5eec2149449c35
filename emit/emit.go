// Package emit renders a lookup table as source code.
package emit

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"

	"github.com/raphaelvigee/searchtable/table"
)

type Lang string

const (
	C  Lang = "c"
	Go Lang = "go"
)

var langs = map[Lang]*template.Template{
	C:  template.Must(template.New("c").Parse(cTemplate)),
	Go: template.Must(template.New("go").Parse(goTemplate)),
}

func ParseLang(s string) (Lang, error) {
	l := Lang(s)
	if _, ok := langs[l]; !ok {
		return "", errors.Errorf("unknown language %q, want %q or %q", s, C, Go)
	}
	return l, nil
}

// Options configure the generated function.
type Options struct {
	// Ident names the lookup function.
	Ident string
	// Package is the Go package clause. Ignored for C.
	Package string
}

type data struct {
	Options
	MaxLen  int
	Entries []table.Entry
}

// Render generates the lookup function for entries in lang. Entries are
// emitted in the order given.
func Render(lang Lang, entries []table.Entry, opts Options) ([]byte, error) {
	t, ok := langs[lang]
	if !ok {
		return nil, errors.Errorf("unknown language %q", lang)
	}

	var buf bytes.Buffer
	err := t.Execute(&buf, data{
		Options: opts,
		MaxLen:  table.MaxKeyLen,
		Entries: entries,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "render %v", lang)
	}

	if lang == Go {
		return formatGo(buf.Bytes())
	}
	return buf.Bytes(), nil
}
