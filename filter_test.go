package minpairs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orths(rs []Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Orthography
	}
	return out
}

func TestFilter(t *testing.T) {
	noun := rec("강", "k a ŋ", 50)
	adverb := rec("깡", "k͈ a ŋ", 70)
	adverb.POS = "MAG"
	sino := rec("공", "k o ŋ", 120)
	sino.Etymology = EtymologySino
	homophone := rec("江", "k a ŋ", 500)
	other := rec("남", "n a m", 900)

	lex := newTestLexicon(t, noun, adverb, sino, homophone, other)
	spec := PairSpec{First: "k", Second: "p"}

	tests := []struct {
		name string
		cfg  FilterConfig
		want []string
	}{
		{"everything", FilterConfig{}, []string{"강", "공"}},
		{"threshold inclusive", FilterConfig{MinFrequency: 50}, []string{"강", "공"}},
		{"threshold excludes", FilterConfig{MinFrequency: 51}, []string{"공", "江"}},
		{"pos", FilterConfig{PartsOfSpeech: []string{"MAG"}}, []string{}},
		{"etymology", FilterConfig{Etymologies: []Etymology{EtymologySino}}, []string{"공"}},
		{"empty pos set", FilterConfig{PartsOfSpeech: []string{}}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(lex.Records(), spec, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, orths(got))
		})
	}
}

func TestFilter_DedupKeepsFirstInSourceOrder(t *testing.T) {
	lex := newTestLexicon(t,
		rec("강", "k a ŋ", 1),
		rec("江", "k a ŋ", 1000),
		rec("綱", "k a ŋ", 5),
	)
	got, err := Filter(lex.Records(), PairSpec{First: "k", Second: "p"}, FilterConfig{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "강", got[0].Orthography)
	assert.Equal(t, 0, got[0].ID)
}

func TestFilter_SecondSegmentAlsoSelects(t *testing.T) {
	lex := newTestLexicon(t, rec("방", "p a ŋ", 1), rec("망", "m a ŋ", 1))
	got, err := Filter(lex.Records(), PairSpec{First: "k", Second: "p"}, FilterConfig{})
	require.NoError(t, err)
	assert.Equal(t, []string{"방"}, orths(got))
}

func TestFilter_InvalidThreshold(t *testing.T) {
	lex := newTestLexicon(t, rec("강", "k a ŋ", 1))
	for _, min := range []float64{-0.5, math.NaN()} {
		_, err := Filter(lex.Records(), PairSpec{First: "k", Second: "p"}, FilterConfig{MinFrequency: min})
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	}
}
