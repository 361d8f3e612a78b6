package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
`

// run executes the root command with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	cmd := newRootCmd(log)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeSample lays out <dir>/2021/example/15.txt and returns dir.
func writeSample(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	exDir := filepath.Join(dir, "2021", "example")
	require.NoError(t, os.MkdirAll(exDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(exDir, "15.txt"), []byte(sampleInput), 0o644))
	return dir
}

func TestSolve_File(t *testing.T) {
	dir := writeSample(t)
	file := filepath.Join(dir, "2021", "example", "15.txt")

	out, err := run(t, "", "solve", file)
	require.NoError(t, err)
	assert.Equal(t, "315\n", out)

	out, err = run(t, "", "solve", "--no-expand", file)
	require.NoError(t, err)
	assert.Equal(t, "40\n", out)
}

func TestSolve_ExampleDataDir(t *testing.T) {
	dir := writeSample(t)
	out, err := run(t, "", "solve", "--data-dir", dir, "--example", "--heuristic", "zero", "--tie-break", "coordinate")
	require.NoError(t, err)
	assert.Equal(t, "315\n", out)

	_, err = run(t, "", "solve", "--data-dir", dir)
	assert.Error(t, err, "non-example input is missing")
}

func TestSolve_StdinAndRender(t *testing.T) {
	out, err := run(t, "116\n138\n213\n", "solve", "--no-expand", "--render", "never", "-")
	require.NoError(t, err)
	assert.Equal(t, "116\n138\n213\n\n7\n", out)
}

func TestSolve_BadInput(t *testing.T) {
	_, err := run(t, "12\n3\n", "solve", "-")
	assert.Error(t, err)

	for _, args := range [][]string{
		{"solve", "--tiles", "0", "-"},
		{"solve", "--tiles", "2147483648", "-"},
		{"solve", "--heuristic", "euclid", "-"},
		{"solve", "--tie-break", "random", "-"},
		{"solve", "--render", "sometimes", "-"},
		{"--log-level", "loud", "solve", "-"},
	} {
		_, err := run(t, "1\n", args...)
		assert.ErrorIs(t, err, errBadFlag, "args %v", args)
	}
}

func TestSolveConfig_InputPath(t *testing.T) {
	cfg := defaultSolveConfig()
	assert.Equal(t, filepath.Join("data", "2021", "15.txt"), cfg.inputPath())
	cfg.Example = true
	assert.Equal(t, filepath.Join("data", "2021", "example", "15.txt"), cfg.inputPath())
	assert.Equal(t, 5, cfg.tileFactor())
	cfg.NoExpand = true
	assert.Equal(t, 1, cfg.tileFactor())
}

func TestServeConfig_Validate(t *testing.T) {
	assert.NoError(t, serveConfig{Addr: ":0", MaxCells: 1}.validate())
	assert.ErrorIs(t, serveConfig{Addr: "", MaxCells: 1}.validate(), errBadFlag)
	assert.ErrorIs(t, serveConfig{Addr: ":0", MaxCells: 0}.validate(), errBadFlag)
}
