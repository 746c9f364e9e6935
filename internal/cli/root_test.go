package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootObfuscatesStdin(t *testing.T) {
	src := "int add(int first, int second) { return first + second; } // sum\n"
	out, err := runCLI(t, src, "-l", "mild", "--seed", "k1")
	require.NoError(t, err)

	assert.NotContains(t, out, "//")
	assert.NotContains(t, out, "first")
	assert.Contains(t, out, "int")
	assert.Contains(t, out, "return")
}

func TestRootSeededRunsAreIdentical(t *testing.T) {
	src := "int add(int a, int b) { return a + b; }\n"
	a, err := runCLI(t, src, "-l", "extreme", "--seed", "pin")
	require.NoError(t, err)
	b, err := runCLI(t, src, "-l", "extreme", "--seed", "pin")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRootPrintsRenameMap(t *testing.T) {
	src := "int add(int a, int b) { return a + b; }\n"
	out, err := runCLI(t, src, "-l", "mild", "--seed", "k1", "--map")
	require.NoError(t, err)

	assert.Contains(t, out, "3 identifiers renamed:")
	assert.Contains(t, out, "add")
}

func TestRootRejectsUnknownLevel(t *testing.T) {
	_, err := runCLI(t, "int x;\n", "-l", "nuclear")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown level")
}

func TestRootFailsOnUnscannableInput(t *testing.T) {
	_, err := runCLI(t, "int x = 1 @ 2;\n", "-l", "mild")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unscannable byte")
}

func TestRootWritesOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.c")
	out, err := runCLI(t, "int x;\n", "-l", "mild", "--seed", "k1", "-o", path)
	require.NoError(t, err)

	assert.Contains(t, out, "written to "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "int")
}

func TestRootUsesConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("level: moderate\nseed: cfg-seed\nreserved: [keep_me]\n"), 0o644))

	src := "int keep_me(int a) { return a + a; }\n"
	out, err := runCLI(t, src, "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "keep_me")
	assert.Contains(t, out, "_OB_A(")
}

func TestRootExplicitConfigMustExist(t *testing.T) {
	_, err := runCLI(t, "int x;\n", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRootVerboseReportsStages(t *testing.T) {
	out, err := runCLI(t, "int x;\n", "-l", "mild", "--seed", "k1", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "tokenize")
	assert.Contains(t, out, "serialize")
}

func TestLevelsCommand(t *testing.T) {
	out, err := runCLI(t, "", "levels")
	require.NoError(t, err)

	for _, name := range []string{"mild", "moderate", "extreme"} {
		assert.Contains(t, out, name)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "cmangle")
}
