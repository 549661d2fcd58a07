package replace

// ruleState tracks the in-flight partial matches for one rule.
//
// candidates holds the 1-based stream positions at which a still-open
// partial match begins, in ascending order. New candidates always start
// at the current position, so appending keeps the slice sorted and
// pruning preserves relative order; the oldest open candidate is always
// candidates[0]. The slice length is bounded by the number of
// self-overlapping prefixes of the search sequence, not by input length.
type ruleState[T comparable] struct {
	rule       Rule[T]
	candidates []int
}

// advance feeds the token consumed at stream position index into the
// rule's partial-match tracking: it prunes candidates whose next required
// token is not tok, then seeds a fresh candidate if tok opens a new
// potential match. A position can be both pruned and re-seeded in the
// same step. advance reports whether the oldest surviving candidate now
// spans the full search sequence.
func (s *ruleState[T]) advance(index int, tok T) bool {
	keep := s.candidates[:0]
	for _, start := range s.candidates {
		rel := index - start
		if rel < len(s.rule.From) && s.rule.From[rel] == tok {
			keep = append(keep, start)
		}
	}
	s.candidates = keep

	if s.rule.From[0] == tok {
		s.candidates = append(s.candidates, index)
	}

	// A completed candidate is necessarily the oldest: any older one
	// would span more than the full search sequence, which commit and
	// prune make impossible.
	return len(s.candidates) > 0 && index-s.candidates[0]+1 == len(s.rule.From)
}

// flushBound returns the greatest stream position that cannot belong to
// any match this rule might still complete: one before the oldest open
// candidate, or index itself when no candidate is open.
func (s *ruleState[T]) flushBound(index int) int {
	if len(s.candidates) == 0 {
		return index
	}
	return s.candidates[0] - 1
}

func (s *ruleState[T]) reset() {
	s.candidates = s.candidates[:0]
}
