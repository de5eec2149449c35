package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/raphaelvigee/searchtable/lexer"
	"github.com/raphaelvigee/searchtable/parser"
	"github.com/raphaelvigee/searchtable/table"
)

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <infile>",
		Short: "Dump the tokens and lookup table built from an identifier table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dump(args[0])
		},
	}
}

func (a *app) dump(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	tokens, err := lexer.Tokenize(bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(err, path)
	}

	for _, t := range tokens {
		fmt.Fprintln(a.stdout, t.StringAlign())
	}
	fmt.Fprintln(a.stdout)

	tbl, err := parser.ParseTokens(tokens)
	a.warn(tbl.Warnings)
	if err != nil {
		return errors.Wrap(err, path)
	}

	entries, err := table.Build(tbl.Records)
	if err != nil {
		return err
	}

	repr.New(a.stdout, repr.Indent("  ")).Println(entries)

	return nil
}
