package parser

import (
	"errors"
	"strings"
)

// traceErr records the chain of parser steps an error bubbled through.
type traceErr struct {
	trace []string
	err   error
}

func (e *traceErr) Error() string {
	return "[" + strings.Join(e.trace, " > ") + "]: " + e.err.Error()
}

func (e *traceErr) Unwrap() error {
	return e.err
}

// Wrap prefixes err's trace with name, creating the trace if needed.
func Wrap(name string, err error) error {
	var te *traceErr
	if errors.As(err, &te) {
		te.trace = append([]string{name}, te.trace...)
		return te
	}

	return &traceErr{
		trace: []string{name},
		err:   err,
	}
}
