package minpairs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkeleton(t *testing.T) {
	segs := []string{"k", "a", "ŋ"}
	assert.Equal(t, "# a ŋ", Skeleton(segs, 0))
	assert.Equal(t, "k # ŋ", Skeleton(segs, 1))
	assert.Equal(t, "k a #", Skeleton(segs, 2))
	assert.Equal(t, "k a ŋ", Skeleton(segs, -1))
}

func TestSkeleton_MultiCharSegmentsStayApart(t *testing.T) {
	// Joining without a separator would make these two collide.
	a := Skeleton([]string{"t", "s", "a", "k"}, 3)
	b := Skeleton([]string{"ts", "a", "k"}, 2)
	assert.NotEqual(t, a, b)
}

func TestNeutralize_RepeatedSegment(t *testing.T) {
	lex := newTestLexicon(t, rec("칵", "k a k", 1))
	m := Neutralize(lex.Records(), "k", KeepAll)

	require.Len(t, m, 2)
	for _, key := range []string{"# a k", "k a #"} {
		recs, ok := m[key]
		require.True(t, ok, "missing skeleton %q", key)
		require.Len(t, recs, 1)
		assert.Equal(t, "칵", recs[0].Orthography)
	}
}

func TestNeutralize_SkipsRecordsWithoutSegment(t *testing.T) {
	lex := newTestLexicon(t, rec("방", "p a ŋ", 1), rec("팡", "pʰ a ŋ", 1))
	m := Neutralize(lex.Records(), "k", KeepAll)
	assert.Empty(t, m)

	m = Neutralize(lex.Records(), "p", KeepAll)
	assert.Equal(t, NeutralizationMap{"# a ŋ": {lex.Records()[0]}}, m)
}

func TestNeutralize_CollisionPolicies(t *testing.T) {
	// Homophones collide on every skeleton.
	lex := newTestLexicon(t,
		rec("강1", "k a ŋ", 1),
		rec("강2", "k a ŋ", 1),
		rec("강3", "k a ŋ", 1),
	)

	tests := []struct {
		policy CollisionPolicy
		want   []string
	}{
		{KeepAll, []string{"강1", "강2", "강3"}},
		{FirstWins, []string{"강1"}},
		{LastWins, []string{"강3"}},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			m := Neutralize(lex.Records(), "k", tt.policy)
			require.Len(t, m, 1)
			var got []string
			for _, r := range m["# a ŋ"] {
				got = append(got, r.Orthography)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCollisionPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    CollisionPolicy
		wantErr bool
	}{
		{"", KeepAll, false},
		{"keep-all", KeepAll, false},
		{"First-Wins", FirstWins, false},
		{" last-wins ", LastWins, false},
		{"random", KeepAll, true},
	}
	for _, tt := range tests {
		got, err := ParseCollisionPolicy(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidConfiguration, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
