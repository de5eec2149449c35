package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/raphaelvigee/searchtable/compiler"
	"github.com/raphaelvigee/searchtable/emit"
	"github.com/raphaelvigee/searchtable/parser"
)

const usage = "searchtable <infile> <outfile> <ident>"

// UsageError reports a wrong number of positional arguments.
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %v (got %d arguments)", usage, e.Got)
}

// app carries the per-invocation state shared by all commands.
type app struct {
	v      *viper.Viper
	log    *log.Logger
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdout, stderr io.Writer) *app {
	a := &app{
		v:      viper.New(),
		log:    log.New(),
		stdout: stdout,
		stderr: stderr,
	}
	a.log.SetOutput(stderr)
	a.log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	return a
}

// NewRootCmd builds the command tree. Nothing in it touches the process
// globals; stdout and stderr are the only outputs.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return newApp(stdout, stderr).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           usage,
		SilenceErrors: true,
		SilenceUsage:  true,
		Short:         "Generate a lookup function from an identifier table",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return &UsageError{Got: len(args)}
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			l, err := log.ParseLevel(a.v.GetString("log"))
			if err != nil {
				l = log.InfoLevel
			}

			a.log.SetLevel(l)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(args[0], args[1], args[2])
		},
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	flags := rootCmd.PersistentFlags()
	flags.String("log", "info", "Log level")
	flags.String("lang", string(emit.C), "Output language (c or go)")
	flags.String("package", "tables", "Package name of generated Go code")

	a.v.SetEnvPrefix("searchtable")
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(newDumpCmd(a))

	return rootCmd
}

// Execute runs the command line in args and returns the process exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	rootCmd := a.rootCmd()
	// cobra falls back to os.Args for nil args.
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		a.log.Error(err)
		return 1
	}

	return 0
}

func (a *app) warn(warnings []parser.Warning) {
	for _, w := range warnings {
		a.log.WithFields(log.Fields{
			"line":  w.Line,
			"ident": w.Key,
		}).Warn("skipping invalid identifier")
	}
}

func (a *app) generate(inPath, outPath, ident string) error {
	lang, err := emit.ParseLang(a.v.GetString("lang"))
	if err != nil {
		return err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	defer in.Close()

	c := compiler.New(compiler.Options{
		Lang:    lang,
		Ident:   ident,
		Package: a.v.GetString("package"),
	})
	c.Log = a.log

	res, err := c.Compile(in)
	a.warn(res.Warnings)
	if err != nil {
		return errors.Wrap(err, inPath)
	}

	if err := os.WriteFile(outPath, res.Output, 0o644); err != nil {
		return errors.Wrap(err, "write output")
	}

	a.log.WithFields(log.Fields{
		"out":     outPath,
		"entries": len(res.Entries),
	}).Debug("generated lookup table")

	return nil
}
