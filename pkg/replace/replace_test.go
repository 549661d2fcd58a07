package replace

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplace_Ints(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		from  []int
		to    []int
		want  []int
	}{
		{
			name:  "single_token",
			input: []int{1, 2, 3},
			from:  []int{2},
			to:    []int{10},
			want:  []int{1, 10, 3},
		},
		{
			name:  "multi_token_pattern",
			input: []int{3, 4, 5, 6, 7, 8, 9},
			from:  []int{4, 5},
			to:    []int{100},
			want:  []int{3, 100, 6, 7, 8, 9},
		},
		{
			name:  "repeated_matches",
			input: []int{3, 4, 5, 6, 4, 5, 9},
			from:  []int{4, 5},
			to:    []int{100, 200, 300},
			want:  []int{3, 100, 200, 300, 6, 100, 200, 300, 9},
		},
		{
			name:  "near_match_left_untouched",
			input: []int{3, 4, 5, 6},
			from:  []int{4, 5, 1},
			to:    []int{100, 200},
			want:  []int{3, 4, 5, 6},
		},
		{
			name:  "no_occurrence_is_identity",
			input: []int{1, 2, 3, 4, 5},
			from:  []int{7, 8},
			to:    []int{0},
			want:  []int{1, 2, 3, 4, 5},
		},
		{
			name:  "self_overlapping_pattern_matches_without_overlap",
			input: []int{3, 4, 5, 4, 5, 4, 9},
			from:  []int{4, 5, 4, 5},
			to:    []int{100},
			want:  []int{3, 100, 4, 9},
		},
		{
			name:  "identity_replacement_round_trips",
			input: []int{1, 2, 1, 2, 1},
			from:  []int{1, 2},
			to:    []int{1, 2},
			want:  []int{1, 2, 1, 2, 1},
		},
		{
			name:  "empty_replacement_deletes",
			input: []int{1, 2, 3, 2, 1},
			from:  []int{2},
			to:    []int{},
			want:  []int{1, 3, 1},
		},
		{
			name:  "match_at_end_of_stream",
			input: []int{1, 2, 3},
			from:  []int{2, 3},
			to:    []int{9},
			want:  []int{1, 9},
		},
		{
			name:  "open_candidate_at_end_of_stream_drains",
			input: []int{1, 2, 3, 2, 3},
			from:  []int{2, 3, 4},
			to:    []int{9},
			want:  []int{1, 2, 3, 2, 3},
		},
		{
			name:  "empty_input",
			input: nil,
			from:  []int{1},
			to:    []int{2},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Replace(slices.Values(tt.input), tt.from, tt.to))
			assert.Equal(t, tt.want, got, "replaced sequence mismatch")
			assert.Len(t, got, len(tt.want))
		})
	}
}

func TestAll_Bytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rules []Rule[byte]
		want  string
	}{
		{
			name:  "single_rule",
			input: "abcacab",
			rules: []Rule[byte]{
				{From: []byte("ab"), To: []byte("AB")},
			},
			want: "ABcacAB",
		},
		{
			name:  "two_rules_single_pass",
			input: "ababcdef",
			rules: []Rule[byte]{
				{From: []byte("abc"), To: []byte("_ABC_")},
				{From: []byte("de"), To: []byte("_DE_")},
			},
			want: "ab_ABC__DE_f",
		},
		{
			// The shorter rule is declared first, so it always completes
			// first at any shared anchor and the longer rule never fires.
			name:  "declared_order_wins_at_shared_anchor",
			input: "abcabc",
			rules: []Rule[byte]{
				{From: []byte("ab"), To: []byte("_AB_")},
				{From: []byte("abc"), To: []byte("_ABC_")},
			},
			want: "_AB_c_AB_c",
		},
		{
			// Rules run in one pass over the original input only, so
			// replacement text is never itself rewritten by a later rule.
			name:  "replacement_not_rescanned",
			input: "ab",
			rules: []Rule[byte]{
				{From: []byte("a"), To: []byte("b")},
				{From: []byte("b"), To: []byte("c")},
			},
			want: "bc",
		},
		{
			name:  "earlier_completion_beats_longer_rule",
			input: "xabcx",
			rules: []Rule[byte]{
				{From: []byte("bc"), To: []byte("__")},
				{From: []byte("abc"), To: []byte("!!")},
			},
			want: "xa__x",
		},
		{
			name:  "no_rules_is_identity",
			input: "hello",
			rules: nil,
			want:  "hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := All(slices.Values([]byte(tt.input)), tt.rules...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(slices.Collect(seq)))
		})
	}
}

func TestAll_RejectsEmptySearch(t *testing.T) {
	_, err := All(slices.Values([]byte("x")),
		Rule[byte]{From: []byte("a"), To: []byte("b")},
		Rule[byte]{From: nil, To: []byte("b")},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule 1")
}

func TestReplace_PanicsOnEmptySearch(t *testing.T) {
	assert.Panics(t, func() {
		Replace(slices.Values([]int{1}), nil, []int{2})
	})
}

// Every input token outside a committed match must appear unchanged and
// in order in the output.
func TestReplace_ConservesUnmatchedTokens(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog")
	seq, err := All(slices.Values(input),
		Rule[byte]{From: []byte("quick"), To: []byte("slow")},
		Rule[byte]{From: []byte("lazy "), To: nil},
	)
	require.NoError(t, err)
	assert.Equal(t, "the slow brown fox jumps over the dog", string(slices.Collect(seq)))
}

func TestAll_ReiterableWhenSourceIs(t *testing.T) {
	seq, err := All(slices.Values([]int{1, 2, 3}), Rule[int]{From: []int{2}, To: []int{10}})
	require.NoError(t, err)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, []int{1, 10, 3}, first)
	assert.Equal(t, first, second, "each range should start a fresh pass")
}

func TestReplace_EarlyBreakStopsSource(t *testing.T) {
	pulled := 0
	src := func(yield func(int) bool) {
		for i := 1; i <= 1000; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	}

	out := Replace(src, []int{999}, []int{0})
	for range out {
		break
	}
	assert.Less(t, pulled, 10, "breaking out of the output must stop pulling input")
}
