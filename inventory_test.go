package minpairs

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadChart(t *testing.T) {
	c, err := LoadChart("testdata/consonants.csv", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"manner", "labial", "alveolar", "velar"}, c.Columns)
	require.Len(t, c.Rows, 4)

	assert.Equal(t, []string{
		"p", "t", "k",
		"pʰ", "tʰ", "kʰ",
		"p͈", "t͈", "k͈",
		"m", "n", "ŋ",
	}, c.Segments())

	seg, ok := c.Selectable(0, 3)
	assert.True(t, ok)
	assert.Equal(t, "k", seg)

	// Row labels and out-of-range cells are not segments.
	_, ok = c.Selectable(0, 0)
	assert.False(t, ok)
	_, ok = c.Selectable(9, 1)
	assert.False(t, ok)
}

func TestReadChart_SkipsLongAndBlankCells(t *testing.T) {
	src := "height,front,back\nhigh,i,\nmid,e,(none)\n"
	c, err := ReadChart(strings.NewReader(src), "v")
	require.NoError(t, err)
	assert.Equal(t, []string{"i", "e"}, c.Segments())
}

func TestReadChart_Empty(t *testing.T) {
	_, err := ReadChart(strings.NewReader(""), "v")
	assert.Error(t, err)
}

func TestChartSelectionFeedsQuery(t *testing.T) {
	c, err := LoadChart("testdata/consonants.csv", "c")
	require.NoError(t, err)
	f := loadTestFinder(t)

	var sel Selection
	for _, cell := range [][2]int{{0, 3}, {0, 1}} {
		seg, ok := c.Selectable(cell[0], cell[1])
		require.True(t, ok)
		sel.Add(seg)
	}
	spec, err := sel.Spec()
	require.NoError(t, err)

	res, err := f.Find(spec, FilterConfig{})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Count)
}

func TestThresholdFromSlider(t *testing.T) {
	tests := []struct {
		v       float64
		want    float64
		wantErr bool
	}{
		{v: 0, want: 1},
		{v: 2, want: 100},
		{v: 5, want: 100000},
		{v: 2.5, want: math.Pow(10, 2.5)},
		{v: -0.1, wantErr: true},
		{v: 5.01, wantErr: true},
		{v: math.NaN(), wantErr: true},
	}
	for _, tt := range tests {
		got, err := ThresholdFromSlider(tt.v)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidConfiguration, "slider %v", tt.v)
			continue
		}
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "slider %v", tt.v)
	}
}

func TestDescribeThreshold(t *testing.T) {
	assert.InDelta(t, 0.0006, RelativeFrequency(100, CorpusTokens), 1e-4)
	assert.Zero(t, RelativeFrequency(100, 0))
	assert.Equal(t,
		"Consider only words that occur more than 100.00 times out of 16m tokens (or, 0.00%)",
		DescribeThreshold(100, CorpusTokens))
}

func TestAllowedPOS(t *testing.T) {
	all := AllowedPOS(DefaultPOSGroups, map[string]bool{"nouns": true, "adverbs": true})
	assert.Equal(t, []string{"NNG", "NNP", "NR", "NP", "NNB", "MAJ", "MAG", "IC"}, all)

	adverbs := AllowedPOS(DefaultPOSGroups, map[string]bool{"adverbs": true})
	assert.Equal(t, []string{"MAJ", "MAG", "IC"}, adverbs)

	none := AllowedPOS(DefaultPOSGroups, nil)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestParseEtymology(t *testing.T) {
	for in, want := range map[string]Etymology{
		"native":  EtymologyNative,
		"Sino":    EtymologySino,
		"외래어":     EtymologyForeign,
		"":        EtymologyUnknown,
		"unknown": EtymologyUnknown,
	} {
		got, err := ParseEtymology(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseEtymology("greek")
	assert.Error(t, err)
}
