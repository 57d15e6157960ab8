package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hyperlife/internal/pattern"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const glider = ".#...\n..#..\n###..\n.....\n.....\n"

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunGliderFromStdin(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive 4D run")
	}
	out, _, err := execute(t, glider, "run")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6*18+1)
	assert.Equal(t, "===", lines[17])
	assert.Equal(t, "848", lines[len(lines)-1])
}

func TestRunFromFileWithFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.txt")
	require.NoError(t, os.WriteFile(path, []byte("##\n##\n"), 0644))

	out, errOut, err := execute(t, "", "run", "--input", path, "--ticks", "1", "--margin", "1", "--log-level", "debug")
	require.NoError(t, err)

	// The 2x2 block is still life in 4D as well.
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6+1+1)
	assert.Equal(t, "..##..", lines[2])
	assert.Equal(t, "===", lines[6])
	assert.Equal(t, "4", lines[7])
	assert.Contains(t, errOut, "edge=6")
	assert.Contains(t, errOut, "level=DEBUG")
}

func TestRunSliceFlags(t *testing.T) {
	out, _, err := execute(t, "#\n", "run", "--ticks", "0", "--margin", "1", "--slice-z", "0")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, _, err = execute(t, "#\n", "run", "--ticks", "1", "--margin", "1", "--slice-z", "0")
	require.NoError(t, err)
	assert.Equal(t, ".....\n.....\n.....\n.....\n.....\n===\n0\n", out)
}

func TestRunRejectsInvalidCharacter(t *testing.T) {
	_, _, err := execute(t, ".#.\n.o.\n", "run")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pattern.ErrInvalidCell))
}

func TestRunRejectsRaggedInput(t *testing.T) {
	_, _, err := execute(t, "###\n#\n", "run")
	require.ErrorIs(t, err, pattern.ErrRaggedRow)
}

func TestRunWarnsWhenTicksExceedMargin(t *testing.T) {
	_, errOut, err := execute(t, "#\n", "run", "--ticks", "3", "--margin", "1")
	require.NoError(t, err)
	assert.Contains(t, errOut, "level=WARN")
}

func TestRunUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyperlife.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ticks: 0\nmargin_ticks: 1\n"), 0644))

	out, _, err := execute(t, "##\n", "run", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	_, _, err := execute(t, "#\n", "run", "--ticks=-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ticks must be non-negative")
}

func TestSweep(t *testing.T) {
	out, _, err := execute(t, "", "sweep", "--seeds", "3", "--workers", "2", "--width", "3", "--height", "3", "--ticks", "1", "--margin", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "SEED"))
	for _, line := range lines[1:] {
		assert.Len(t, strings.Fields(line), 5)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "hyperlife version "+version+"\n", out)
}
