// Package table turns parsed identifier records into the sorted lookup
// table the emitters render, and provides Lookup, the reference behaviour
// every generated lookup function must match.
package table

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MaxKeyLen is the longest query that fits in a 32-bit key.
const MaxKeyLen = 4

// Entry is one row of the lookup table.
type Entry struct {
	Ident   string
	Key     uint32
	Name    string
	Escaped string
}

// Key folds s into a big-endian unsigned integer, first byte most
// significant. It reports false if s is longer than MaxKeyLen bytes.
func Key(s string) (uint32, bool) {
	if len(s) > MaxKeyLen {
		return 0, false
	}

	var u uint32
	for i := 0; i < len(s); i++ {
		u = u<<8 | uint32(s[i])
	}
	return u, true
}

func plain(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == ' ', c == '.', c == ',':
		return true
	}
	return false
}

// Escape makes s safe to embed between double quotes in C or Go source.
// Every byte outside [A-Za-z0-9 .,] becomes a three digit octal escape.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if plain(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, `\%03o`, c)
	}
	return b.String()
}

// Build encodes records into entries sorted by identifier.
func Build(records map[string]string) ([]Entry, error) {
	idents := maps.Keys(records)
	slices.Sort(idents)

	entries := make([]Entry, 0, len(idents))
	for _, id := range idents {
		k, ok := Key(id)
		if !ok {
			return nil, errors.Errorf("identifier %q is longer than %d bytes", id, MaxKeyLen)
		}

		name := records[id]
		entries = append(entries, Entry{
			Ident:   id,
			Key:     k,
			Name:    name,
			Escaped: Escape(name),
		})
	}

	return entries, nil
}

// Lookup resolves query against entries exactly as the generated function
// does: queries longer than MaxKeyLen never match, everything else is
// folded and compared against each key.
func Lookup(entries []Entry, query string) (string, bool) {
	u, ok := Key(query)
	if !ok {
		return "", false
	}

	i := slices.IndexFunc(entries, func(e Entry) bool {
		return e.Key == u
	})
	if i < 0 {
		return "", false
	}
	return entries[i].Name, true
}
