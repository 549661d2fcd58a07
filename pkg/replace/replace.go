// Package replace implements a streaming, pull-based find-and-replace
// transform over sequences of comparable tokens.
//
// The transform scans its input left to right and substitutes every
// non-overlapping occurrence of a rule's search sequence with that rule's
// replacement sequence. Input is consumed lazily: each request for an
// output token draws only as much input as is needed to decide at least
// one token. Tokens are held back only while they could still belong to a
// match, so memory stays bounded by the longest search sequence plus the
// replacement burst in flight.
//
// Multiple rules are active simultaneously in a single pass. When two
// rules complete a match on the same input token, the rule declared first
// wins. Scanning resumes strictly after a committed match, so matches
// never overlap and replacement text is never rescanned.
//
// Basic usage:
//
//	src := slices.Values([]byte("hello world"))
//	out := replace.Replace(src, []byte("world"), []byte("there"))
//	fmt.Println(string(slices.Collect(out))) // "hello there"
package replace

import (
	"iter"

	"gitlab.com/tozd/go/errors"
)

// Rule pairs a search sequence with its replacement. Rule order is
// significant: when two rules complete a match on the same input token,
// the rule declared first wins.
type Rule[T comparable] struct {
	// From is the token sequence to search for. It must be non-empty.
	From []T

	// To is the token sequence emitted in place of each match. It may be
	// empty, which deletes matches instead of replacing them.
	To []T
}

func (r Rule[T]) validate() error {
	if len(r.From) == 0 {
		return errors.New("empty search sequence")
	}
	return nil
}

// Replace substitutes every non-overlapping occurrence of from in src
// with to, scanning left to right. The returned sequence consumes src
// lazily and can be ranged over once per pull of src.
//
// Replace panics if from is empty; use All when rule errors need to be
// handled.
func Replace[T comparable](src iter.Seq[T], from, to []T) iter.Seq[T] {
	out, err := All(src, Rule[T]{From: from, To: to})
	if err != nil {
		panic(err)
	}
	return out
}

// All applies every rule in a single pass over src. Earlier rules win
// when two rules complete a match on the same input token. All returns an
// error if any rule has an empty search sequence.
//
// Each range over the returned sequence starts a fresh pass over src, so
// the result is re-iterable whenever src is.
func All[T comparable](src iter.Seq[T], rules ...Rule[T]) (iter.Seq[T], error) {
	for i, r := range rules {
		if err := r.validate(); err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}
	}

	return func(yield func(T) bool) {
		next, stop := iter.Pull(src)
		defer stop()

		eng, err := New(next, rules...)
		if err != nil {
			// rules were validated above
			return
		}
		for {
			tok, ok := eng.Next()
			if !ok {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}, nil
}
