package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Category\tNo. genes\tNo. transcripts\tMean gene length (bp)\tNo. single-exon genes\tMean exons per transcript"

// isolate points HOME at an empty directory so no user config is read.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AGAT_TABLE_OUTPUT", "")
	t.Setenv("AGAT_TABLE_LOG_LEVEL", "")
	return home
}

func writeReport(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "agat_stats.txt")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

const mrnaOnly = `-------------------- mrna --------------------
Number of gene                               100
Number of mrna                               120
mean gene length (bp)                        2500
Number of single exon gene                   40
mean exons per mrna                          3.5
`

func TestRun_ProteinCodingOnly(t *testing.T) {
	isolate(t)
	code, stdout, stderr := runCLI(t, writeReport(t, mrnaOnly))

	require.Equal(t, ExitSuccess, code, stderr)
	assert.Equal(t, strings.Join([]string{
		header,
		"Protein-coding\t100\t120\t2500\t40\t3.5",
		"Ig/TCR segments\t0\t0\t0\t0\t0",
		"Other non-coding\t0\t0\t0\t0\t0",
	}, "\n")+"\n", stdout)
	assert.Empty(t, stderr)
}

func TestRun_FixtureReport(t *testing.T) {
	isolate(t)
	code, stdout, stderr := runCLI(t, filepath.Join("..", "..", "testdata", "agat_stats.txt"))
	require.Equal(t, ExitSuccess, code, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, header, lines[0])
	assert.Equal(t, "Ig/TCR segments\t243\t254\t54-5032\t79\t1.0-3.2", lines[2])
	assert.Equal(t, "Other non-coding\t2221\t2310\t9112-9112\t412\t3.1-3.1", lines[7])
}

func TestRun_Idempotent(t *testing.T) {
	isolate(t)
	path := writeReport(t, mrnaOnly)

	_, first, _ := runCLI(t, path)
	_, second, _ := runCLI(t, path)
	assert.Equal(t, first, second)
}

func TestRun_Usage(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{nil, {"a.txt", "b.txt"}} {
		code, stdout, _ := runCLI(t, args...)
		assert.Equal(t, ExitError, code)
		assert.Equal(t, usageLine+"\n", stdout)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	isolate(t)
	code, stdout, stderr := runCLI(t, "-x", writeReport(t, mrnaOnly))

	assert.Equal(t, ExitError, code)
	assert.Equal(t, usageLine+"\n", stdout)
	assert.Empty(t, stderr)
}

func TestRun_MissingInput(t *testing.T) {
	isolate(t)
	code, stdout, stderr := runCLI(t, filepath.Join(t.TempDir(), "missing.txt"))

	assert.Equal(t, ExitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "missing.txt")
}

func TestRun_MalformedNumber(t *testing.T) {
	isolate(t)
	path := writeReport(t, `-------------------- v_gene_segment --------------------
Number of gene   lots
`)
	code, stdout, stderr := runCLI(t, path)

	assert.Equal(t, ExitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `invalid number "lots"`)
}

func TestRun_OutputFile(t *testing.T) {
	isolate(t)
	out := filepath.Join(t.TempDir(), "summary.tsv")

	code, stdout, stderr := runCLI(t, "-o", out, writeReport(t, mrnaOnly))
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), header+"\nProtein-coding\t100"))
}

func TestRun_DebugLogging(t *testing.T) {
	isolate(t)
	code, stdout, stderr := runCLI(t, "--log-level", "debug", writeReport(t, mrnaOnly))

	require.Equal(t, ExitSuccess, code)
	assert.True(t, strings.HasPrefix(stdout, header))
	assert.Contains(t, stderr, "section located")
	assert.NotContains(t, stdout, "section located")
}

func TestRun_InvalidLogLevel(t *testing.T) {
	isolate(t)
	code, _, stderr := runCLI(t, "--log-level", "loud", writeReport(t, mrnaOnly))

	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "invalid log level")
}

func TestRun_ConfigFile(t *testing.T) {
	home := isolate(t)
	out := filepath.Join(t.TempDir(), "from-config.tsv")
	cfg := "output: " + out + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".agat-table.yaml"), []byte(cfg), 0o644))

	code, stdout, stderr := runCLI(t, writeReport(t, mrnaOnly))
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Empty(t, stdout)
	assert.FileExists(t, out)
}

func TestConfig_SetGet(t *testing.T) {
	home := isolate(t)

	code, stdout, stderr := runCLI(t, "config", "set", "log.level", "debug")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stdout, filepath.Join(home, ".agat-table.yaml"))

	code, stdout, stderr = runCLI(t, "config", "get", "log.level")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Equal(t, "debug\n", stdout)

	code, _, stderr = runCLI(t, "config", "get", "no.such.key")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, `unknown key "no.such.key"`)
}

func TestConfig_SetRejectsBadValues(t *testing.T) {
	home := isolate(t)
	cfg := filepath.Join(home, ".agat-table.yaml")

	code, _, stderr := runCLI(t, "config", "set", "log.level", "loud")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, `invalid log level "loud"`)
	assert.NoFileExists(t, cfg)

	code, _, stderr = runCLI(t, "config", "set", "annotations.alphamissense", "on")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "known keys: output, log.level")
	assert.NoFileExists(t, cfg)

	code, _, _ = runCLI(t, writeReport(t, mrnaOnly))
	assert.Equal(t, ExitSuccess, code)
}

func TestConfig_RepairsBadLogLevel(t *testing.T) {
	home := isolate(t)
	cfg := filepath.Join(home, ".agat-table.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: loud\n"), 0o644))

	// The table run refuses the level, but config commands still work.
	code, _, stderr := runCLI(t, writeReport(t, mrnaOnly))
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, `invalid log level "loud"`)

	code, stdout, stderr := runCLI(t, "config")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stdout, `"loud"`)

	code, _, stderr = runCLI(t, "config", "set", "log.level", "info")
	require.Equal(t, ExitSuccess, code, stderr)

	code, _, stderr = runCLI(t, writeReport(t, mrnaOnly))
	assert.Equal(t, ExitSuccess, code, stderr)
}

func TestConfig_SetKeepsOnlyFileKeys(t *testing.T) {
	home := isolate(t)
	t.Setenv("AGAT_TABLE_LOG_LEVEL", "debug")

	code, _, stderr := runCLI(t, "config", "set", "output", "table.tsv")
	require.Equal(t, ExitSuccess, code, stderr)

	data, err := os.ReadFile(filepath.Join(home, ".agat-table.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "output: table.tsv")
	assert.NotContains(t, string(data), "debug")
}

func TestConfig_Show(t *testing.T) {
	home := isolate(t)
	cfg := filepath.Join(home, ".agat-table.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output: table.tsv\n"), 0o644))
	t.Setenv("AGAT_TABLE_LOG_LEVEL", "info")

	code, stdout, stderr := runCLI(t, "config")
	require.Equal(t, ExitSuccess, code, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "output     \"table.tsv\"\t# file "+cfg, lines[0])
	assert.Equal(t, "log.level  \"info\"\t# env AGAT_TABLE_LOG_LEVEL", lines[1])
}

func TestConfig_ShowDefaultsAndFlag(t *testing.T) {
	isolate(t)
	code, stdout, stderr := runCLI(t, "--log-level", "error", "config")
	require.Equal(t, ExitSuccess, code, stderr)

	assert.Contains(t, stdout, "output     \"\"\t# default")
	assert.Contains(t, stdout, "log.level  \"error\"\t# flag --log-level")
}

func TestVersion(t *testing.T) {
	isolate(t)
	code, stdout, _ := runCLI(t, "version")

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "agat-table version dev (none) built unknown\n", stdout)
}
