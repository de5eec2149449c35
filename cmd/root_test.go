package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type run struct {
	code   int
	stdout string
	stderr string
}

func execute(args ...string) run {
	var stdout, stderr bytes.Buffer
	code := Execute(args, &stdout, &stderr)
	return run{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeInput(t *testing.T, content string) string {
	p := filepath.Join(t.TempDir(), "pnp.ids")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func readOutput(t *testing.T, p string) string {
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}

func TestUsage(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"in"},
		{"in", "out"},
		{"in", "out", "ident", "extra"},
	} {
		r := execute(args...)
		assert.Equal(t, 1, r.code, args)
		assert.Contains(t, r.stderr, "usage: searchtable <infile> <outfile> <ident>")
		assert.Contains(t, r.stderr, fmt.Sprintf("(got %d arguments)", len(args)))
	}
}

func TestGenerateC(t *testing.T) {
	in := writeInput(t, "PNP Plug and Play\nACME Acme Corp.\n")
	out := filepath.Join(t.TempDir(), "pnp-ids.c")

	r := execute(in, out, "pnp_id_table")
	require.Equal(t, 0, r.code, r.stderr)

	assert.Contains(t, r.stderr, "level=warning")
	assert.Contains(t, r.stderr, `msg="skipping invalid identifier"`)
	assert.Contains(t, r.stderr, "ident=PNP")
	assert.Contains(t, r.stderr, "line=1")

	src := readOutput(t, out)
	assert.Contains(t, src, "#include <string.h>\n#include <stdint.h>\n")
	assert.Contains(t, src, "const char *\npnp_id_table(const char *key);\n")
	assert.Contains(t, src, "    case 1094929733: return \"Acme Corp.\";\n")
	assert.NotContains(t, src, "Plug and Play")
}

func TestGenerateDeterministic(t *testing.T) {
	in := writeInput(t, "ZZZZ z\nACME Acme \"Corp\"\nMMMM m\n")
	dir := t.TempDir()
	a := filepath.Join(dir, "a.c")
	b := filepath.Join(dir, "b.c")

	require.Equal(t, 0, execute(in, a, "lookup").code)
	require.Equal(t, 0, execute(in, b, "lookup").code)

	assert.Equal(t, readOutput(t, a), readOutput(t, b))
}

func TestGenerateGoFlag(t *testing.T) {
	in := writeInput(t, "ACME Acme Corp.\n")
	out := filepath.Join(t.TempDir(), "pnp.go")

	r := execute("--lang", "go", "--package", "pnp", in, out, "VendorName")
	require.Equal(t, 0, r.code, r.stderr)

	src := readOutput(t, out)
	assert.Contains(t, src, "package pnp\n")
	assert.Contains(t, src, "func VendorName(key string) (string, bool) {")
}

func TestGenerateGoEnv(t *testing.T) {
	t.Setenv("SEARCHTABLE_LANG", "go")
	t.Setenv("SEARCHTABLE_PACKAGE", "vendors")

	in := writeInput(t, "ACME Acme Corp.\n")
	out := filepath.Join(t.TempDir(), "pnp.go")

	r := execute(in, out, "Lookup")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, readOutput(t, out), "package vendors\n")
}

func TestGenerateUnknownLang(t *testing.T) {
	in := writeInput(t, "ACME Acme Corp.\n")
	out := filepath.Join(t.TempDir(), "out")

	r := execute("--lang", "cobol", in, out, "lookup")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "unknown language")
	assert.NoFileExists(t, out)
}

func TestGenerateMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.c")

	r := execute(filepath.Join(dir, "missing"), out, "lookup")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "read input")
	assert.NoFileExists(t, out)
}

func TestGenerateUnwritableOutput(t *testing.T) {
	in := writeInput(t, "ACME Acme Corp.\n")
	out := filepath.Join(t.TempDir(), "no", "such", "dir", "out.c")

	r := execute(in, out, "lookup")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "write output")
}

func TestGenerateMalformedRow(t *testing.T) {
	in := writeInput(t, "PNP Plug\nACME\n")
	out := filepath.Join(t.TempDir(), "out.c")

	r := execute(in, out, "lookup")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "ident=PNP")
	assert.Contains(t, r.stderr, "malformed row")
	assert.NoFileExists(t, out)
}

func TestDump(t *testing.T) {
	in := writeInput(t, "PNP Plug and Play\nACME Acme Corp.\n")

	r := execute("dump", in)
	require.Equal(t, 0, r.code, r.stderr)

	assert.Contains(t, r.stdout, `"ACME"`)
	assert.Contains(t, r.stdout, "Key")
	assert.Contains(t, r.stdout, "table.Entry")
	assert.Contains(t, r.stdout, "Acme Corp.")
	assert.Contains(t, r.stderr, "ident=PNP")
}
