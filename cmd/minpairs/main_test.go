package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/minpairs"
)

func testdata(t *testing.T, name string) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	return p
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--lexicon", testdata(t, "lexicon.csv"), "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestQuery_TSV(t *testing.T) {
	out, err := runCLI(t, "query", "k, p", "--min-freq", "0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "#\t[k]\tIPA\tFreq\t[p]\tIPA\tFreq", lines[0])
	assert.Equal(t, "1\t각\tk a k\t30\t박\tp a k\t200", lines[1])
	assert.Equal(t, "4\t각\tk a k\t30\t갑\tk a p\t40", lines[4])
}

func TestQuery_JSON(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"two args", []string{"k", "p", "--min-freq", "0"}, 4},
		{"etymology", []string{"k, p", "--min-freq", "0", "--etymology", "sino"}, 3},
		{"pos", []string{"k, p", "--min-freq", "0", "--pos", "NNG"}, 3},
		{"pos lower-case", []string{"k, p", "--min-freq", "0", "--pos", "nng"}, 3},
		{"pos explicitly empty", []string{"k, p", "--min-freq", "0", "--pos", ""}, 0},
		{"pos group", []string{"k, p", "--min-freq", "0", "--pos-group", "adverbs"}, 0},
		{"default slider", []string{"k, p"}, 0},
		{"slider", []string{"k, p", "--slider", "1.5"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, append([]string{"query", "-o", "json"}, tt.args...)...)
			require.NoError(t, err)

			var res resultOutput
			require.NoError(t, json.Unmarshal([]byte(out), &res), out)
			assert.Equal(t, tt.want, res.Count)
			assert.Len(t, res.Pairs, tt.want)
		})
	}
}

func TestQuery_TableShowsSummary(t *testing.T) {
	out, err := runCLI(t, "query", "m, n", "--min-freq", "0", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "No minimal pairs by [m] and [n]. Please try different parameter settings.")

	out, err = runCLI(t, "query", "k, p", "--min-freq", "0", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Minimal pairs by [k] and [p] (N = 4)")
	assert.Contains(t, out, "╭")
}

func TestQuery_Errors(t *testing.T) {
	_, err := runCLI(t, "query", "k, k")
	assert.ErrorIs(t, err, minpairs.ErrInvalidSpecification)

	_, err = runCLI(t, "query", "k", "p", "t")
	assert.Error(t, err)

	_, err = runCLI(t, "query", "k, p", "--slider", "6")
	assert.ErrorIs(t, err, minpairs.ErrInvalidConfiguration)

	_, err = runCLI(t, "query", "k, p", "--pos-group", "verbs")
	assert.ErrorIs(t, err, minpairs.ErrInvalidConfiguration)

	_, err = runCLI(t, "query", "k, p", "-o", "xml")
	assert.Error(t, err)

	_, err = runCLI(t, "query", "k, p", "--policy", "random")
	assert.Error(t, err)
}

func TestSegments(t *testing.T) {
	out, err := runCLI(t, "segments", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, "Segment\tRecords\tOccurrences\na\t7\t7\nŋ\t6\t6\nk\t5\t6\n", out)
}

func TestThreshold(t *testing.T) {
	out, err := runCLI(t, "threshold", "3")
	require.NoError(t, err)
	assert.Equal(t, "Consider only words that occur more than 1000.00 times out of 16m tokens (or, 0.01%)\n", out)
}

func TestCharts_FromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "lexicon:\n  consonant_chart: \"" + testdata(t, "consonants.csv") + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	out, err := runCLI(t, "--config", path, "charts")
	require.NoError(t, err)
	assert.Contains(t, out, "consonants\nmanner\tlabial\talveolar\tvelar\nplain\tp\tt\tk")

	_, err = runCLI(t, "charts")
	assert.Error(t, err)
}

func TestParsePairArgs(t *testing.T) {
	spec, err := parsePairArgs([]string{"(pʰ, p)"})
	require.NoError(t, err)
	assert.Equal(t, minpairs.PairSpec{First: "pʰ", Second: "p"}, spec)

	spec, err = parsePairArgs([]string{"t", "d"})
	require.NoError(t, err)
	assert.Equal(t, minpairs.PairSpec{First: "t", Second: "d"}, spec)

	_, err = parsePairArgs(nil)
	assert.ErrorIs(t, err, minpairs.ErrInvalidSpecification)
}
