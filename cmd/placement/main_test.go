package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleInput = `10 10
2
0 0 0 2 2
1 8 8 2 2
1
0 2 0 0 0 1 0 0
`

func TestRun_EndToEndProducesOutput(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.txt")
	outputPath := filepath.Join(dir, "placement.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(sampleInput), 0o644))

	code := run([]string{"-log-level", "error", inputPath, outputPath})
	require.Equal(t, 0, code)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"grid"`)
	require.Contains(t, string(data), `"cells"`)
}

func TestRun_EmptyPlacementExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.txt")
	outputPath := filepath.Join(dir, "placement.json")
	require.NoError(t, os.WriteFile(inputPath, []byte("10 10\n0\n0\n"), 0o644))

	code := run([]string{"-log-level", "error", inputPath, outputPath})
	require.Equal(t, 1, code)
}

func TestRun_MissingInputFileExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	code := run([]string{"-log-level", "error", filepath.Join(dir, "missing.txt")})
	require.Equal(t, 1, code)
}
