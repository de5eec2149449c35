package parser

import "fmt"

// KeyLen is the only identifier length a row may carry.
const KeyLen = 4

// Table is the result of parsing an identifier table.
type Table struct {
	// Records maps identifiers to their trimmed names. A later row with the
	// same identifier replaces an earlier one.
	Records map[string]string
	// Warnings lists the rows that were skipped, in input order.
	Warnings []Warning
}

// Warning describes a row that was dropped because its identifier does not
// have KeyLen bytes.
type Warning struct {
	Line int
	Key  string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: skipping invalid identifier %q", w.Line, w.Key)
}

// MalformedRowError is returned for a line that does not split into an
// identifier and a name.
type MalformedRowError struct {
	Line int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: malformed row, expected an identifier followed by a name", e.Line)
}
