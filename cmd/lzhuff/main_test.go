package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func writeInput(t *testing.T) (dir, path string, data []byte) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "input.txt")
	data = []byte(strings.Repeat("peter piper picked a peck of pickled peppers. ", 80))
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return dir, path, data
}

func TestCompressDecompress(t *testing.T) {
	dir, path, data := writeInput(t)

	code, _, stderr := runCLI(t, "compress", "-window", "512", "-verify", path)
	require.Zero(t, code, stderr)
	require.Contains(t, stderr, "compressed")
	require.FileExists(t, path+".lz77")
	require.FileExists(t, path+".lz77.huff")

	out := filepath.Join(dir, "restored.txt")
	code, _, stderr = runCLI(t, "decompress", "-window", "512", "-o", out, path+".lz77.huff")
	require.Zero(t, code, stderr)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestDecompress_DefaultOutput(t *testing.T) {
	_, path, data := writeInput(t)

	code, _, stderr := runCLI(t, "compress", "-memory", path)
	require.Zero(t, code, stderr)
	require.NoError(t, os.Remove(path))

	code, _, stderr = runCLI(t, "decompress", path+".lz77.huff")
	require.Zero(t, code, stderr)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestBench(t *testing.T) {
	dir, path, _ := writeInput(t)
	chart := filepath.Join(dir, "ratio.svg")

	code, stdout, stderr := runCLI(t, "-v", "bench", "-windows", "8,64", "-chart", chart, path)
	require.Zero(t, code, stderr)
	require.Contains(t, stdout, "Deflate")
	require.Contains(t, stdout, "Brotli")
	require.Contains(t, stderr, "level=DEBUG")
	require.FileExists(t, chart)
}

func TestCompress_Dump(t *testing.T) {
	_, path, _ := writeInput(t)

	code, stdout, stderr := runCLI(t, "compress", "-dump", "-verify", path)
	require.Zero(t, code, stderr)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Greater(t, len(lines), 1)
	require.NotContains(t, lines[0], " ", "root level holds one node")
	require.Contains(t, stdout, ":'p')")
}

func TestBench_Baselines(t *testing.T) {
	_, path, _ := writeInput(t)

	code, stdout, stderr := runCLI(t, "bench", "-windows", "64", "-baselines", "None, zstd,LZ4", "-level", "3", path)
	require.Zero(t, code, stderr)
	require.Contains(t, stdout, "None")
	require.Contains(t, stdout, "Zstd")
	require.Contains(t, stdout, "LZ4")
	require.NotContains(t, stdout, "Brotli")

	code, stdout, stderr = runCLI(t, "bench", "-windows", "64", "-baselines", "", path)
	require.Zero(t, code, stderr)
	require.NotContains(t, stdout, "Snappy")
}

func TestSizes(t *testing.T) {
	dir, path, data := writeInput(t)

	code, stdout, _ := runCLI(t, "sizes", dir)
	require.Zero(t, code)
	require.Equal(t, strconv.Itoa(len(data))+"  "+path+"\n", stdout)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "no command", args: nil, code: 2},
		{name: "unknown command", args: []string{"explode"}, code: 2},
		{name: "missing file", args: []string{"compress"}, code: 2},
		{name: "bad flag", args: []string{"compress", "-nope", "x"}, code: 2},
		{name: "bad windows", args: []string{"bench", "-windows", "a,b", "x"}, code: 2},
		{name: "unknown baseline", args: []string{"bench", "-baselines", "zip", "x"}, code: 2},
		{name: "tree codec baseline", args: []string{"bench", "-baselines", "huffman", "-windows", "8", "main_test.go"}, code: 1},
		{name: "negative level", args: []string{"bench", "-level", "-1", "-windows", "8", "main_test.go"}, code: 1},
		{name: "bad window size", args: []string{"compress", "-window", "0", "x"}, code: 1},
		{name: "not compressed name", args: []string{"decompress", "plain.txt"}, code: 1},
		{name: "missing input", args: []string{"compress", filepath.Join(t.TempDir(), "absent")}, code: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			require.Equal(t, tt.code, code, stderr)
		})
	}
}
