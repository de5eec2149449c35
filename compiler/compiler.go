// Package compiler chains parsing, encoding and emission of an identifier
// table into generated source.
package compiler

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/raphaelvigee/searchtable/emit"
	"github.com/raphaelvigee/searchtable/parser"
	"github.com/raphaelvigee/searchtable/table"
)

type Stage int

const (
	Start Stage = iota
	Parsed
	Encoded
	Emitted
	Done
)

func (s Stage) String() string {
	switch s {
	case Start:
		return "start"
	case Parsed:
		return "parsed"
	case Encoded:
		return "encoded"
	case Emitted:
		return "emitted"
	case Done:
		return "done"
	}
	return "unknown"
}

type Options struct {
	Lang    emit.Lang
	Ident   string
	Package string
}

// Result holds everything a run produced. Warnings are filled in even when
// the run fails; Output is only set once the run reaches Emitted.
type Result struct {
	Stage    Stage
	Warnings []parser.Warning
	Entries  []table.Entry
	Output   []byte
}

type Compiler struct {
	Options
	Log log.FieldLogger
}

// New returns a Compiler that logs nowhere until Log is replaced.
func New(opts Options) *Compiler {
	l := log.New()
	l.SetOutput(io.Discard)

	return &Compiler{
		Options: opts,
		Log:     l,
	}
}

// Compile runs the pipeline over the table read from r. It writes nothing;
// persisting Result.Output is up to the caller. The returned Result is never
// nil and records the last stage that completed.
func (c *Compiler) Compile(r io.Reader) (*Result, error) {
	res := &Result{Stage: Start}

	var records map[string]string
	err := c.run(res, Parsed, func() error {
		tbl, err := parser.Parse(r)
		res.Warnings = tbl.Warnings
		records = tbl.Records
		return err
	})
	if err != nil {
		return res, err
	}

	err = c.run(res, Encoded, func() (err error) {
		res.Entries, err = table.Build(records)
		return err
	})
	if err != nil {
		return res, err
	}

	err = c.run(res, Emitted, func() (err error) {
		res.Output, err = emit.Render(c.Lang, res.Entries, emit.Options{
			Ident:   c.Ident,
			Package: c.Package,
		})
		return err
	})
	if err != nil {
		return res, err
	}

	res.Stage = Done
	c.Log.WithFields(log.Fields{
		"entries":  len(res.Entries),
		"warnings": len(res.Warnings),
		"bytes":    len(res.Output),
	}).Debug("compiled table")

	return res, nil
}

// run executes one stage and advances res to next on success.
func (c *Compiler) run(res *Result, next Stage, f func() error) error {
	l := c.Log.WithField("stage", next)
	l.Tracef("> %v", res.Stage)

	if err := f(); err != nil {
		l.Tracef("< %v failed", res.Stage)
		return errors.Wrapf(err, "%v -> %v", res.Stage, next)
	}

	l.Tracef("< %v", next)
	res.Stage = next
	return nil
}
