package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuya-isaka/chibisearch/seqio"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFindArgs(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expect string
	}{
		{"Found", []string{"find", "--target", "7", "1", "3", "5", "7", "9", "11"}, "3\n"},
		{"NotFound", []string{"find", "--target", "2", "1", "3", "5", "7", "9", "11"}, "not found\n"},
		{"Single", []string{"find", "-t", "5", "5"}, "0\n"},
		{"Negative", []string{"find", "--target", "-3", "--", "-5", "-3", "0"}, "1\n"},
		{"Canonical", []string{"find", "--mode", "canonical", "--target", "1", "1", "1", "4"}, "1\n"},
		{"Faithful", []string{"find", "--target", "1", "1", "1", "4"}, "0\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := run(t, "", test.args...)
			require.NoError(t, err)
			assert.Equal(t, test.expect, out)
		})
	}
}

func TestFindStdin(t *testing.T) {
	out, err := run(t, "1, 2, 3\n4 5\n", "find", "--target", "5")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, err = run(t, "", "find", "--target", "5")
	require.NoError(t, err)
	assert.Equal(t, "not found\n", out)
}

func TestFindRequiresTarget(t *testing.T) {
	_, err := run(t, "", "find", "1", "2")
	assert.Error(t, err)
}

func TestFindStrict(t *testing.T) {
	_, err := run(t, "", "find", "--strict", "--target", "1", "3", "1", "2")
	assert.Error(t, err)

	out, err := run(t, "", "find", "--target", "1", "3", "1", "2")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFindInvalidValue(t *testing.T) {
	_, err := run(t, "", "find", "--target", "1", "1", "x")
	assert.Error(t, err)
}

func TestEncodeAndFindBinary(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "seq.bin")

	_, err := run(t, "", "encode", "-o", bin, "1", "3", "5", "7", "9", "11")
	require.NoError(t, err)

	info, err := os.Stat(bin)
	require.NoError(t, err)
	assert.Equal(t, int64(6*seqio.ElementSize), info.Size())

	out, err := run(t, "", "find", "--target", "9", "--file", bin, "--format", "binary")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestEncodeStdout(t *testing.T) {
	out, err := run(t, "1 2", "encode")
	require.NoError(t, err)

	seq, err := seqio.ReadBinary(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, seq)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "chibisearch.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("search:\n  mode: canonical\nlogging:\n  level: error\n  encoding: json\n"), 0644))

	out, err := run(t, "", "--config", cfgPath, "find", "--target", "1", "1", "1", "4")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	// フラグは設定ファイルより優先される
	out, err = run(t, "", "--config", cfgPath, "find", "--mode", "faithful", "--target", "1", "1", "1", "4")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestFindBadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("search:\n  mode: fuzzy\n"), 0644))

	_, err := run(t, "", "--config", cfgPath, "find", "--target", "1", "1")
	assert.Error(t, err)
}

func TestFindMissingFile(t *testing.T) {
	_, err := run(t, "", "find", "--target", "1", "--file", filepath.Join(t.TempDir(), "none.txt"))
	assert.Error(t, err)
}
