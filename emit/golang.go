package emit

import (
	"go/format"

	"github.com/pkg/errors"
)

const goTemplate = `// Code generated by searchtable. DO NOT EDIT.

package {{.Package}}

// {{.Ident}} returns the name registered for key and whether key is known.
func {{.Ident}}(key string) (string, bool) {
	if len(key) > {{.MaxLen}} {
		return "", false
	}

	var u uint32
	for i := 0; i < len(key); i++ {
		u = u<<8 | uint32(key[i])
	}

	switch u {
{{- range .Entries}}
	case {{.Key}}: // {{printf "%q" .Ident}}
		return "{{.Escaped}}", true
{{- end}}
	}
	return "", false
}
`

func formatGo(src []byte) ([]byte, error) {
	out, err := format.Source(src)
	if err != nil {
		return nil, errors.Wrap(err, "format generated go")
	}
	return out, nil
}
