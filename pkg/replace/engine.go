package replace

import (
	"iter"

	"gitlab.com/tozd/go/errors"
)

// Engine is a streaming find-and-replace transform bound to a pull source
// of tokens. Each call to Next draws just enough input from the source to
// decide at least one output token.
//
// An Engine is single-use: to restart a stream, construct a new Engine.
// It holds no external resources and is not safe for concurrent use, but
// independent engines over different sources are fully independent.
type Engine[T comparable] struct {
	next   func() (T, bool)
	states []*ruleState[T]

	// pending holds consumed tokens whose fate is undecided, spanning
	// stream positions flushed+1 through index.
	pending []T

	// ready holds tokens decided for emission, served FIFO by Next.
	ready []T

	index   int // tokens consumed from the source so far
	flushed int // highest stream position finally resolved
	commits int
	done    bool
	aborted bool
}

// New builds an Engine reading tokens from next, which reports false once
// the source is exhausted. Every rule's search sequence must be
// non-empty; rule order sets match priority.
func New[T comparable](next func() (T, bool), rules ...Rule[T]) (*Engine[T], error) {
	states := make([]*ruleState[T], 0, len(rules))
	for i, r := range rules {
		if err := r.validate(); err != nil {
			return nil, errors.Errorf("rule %d: %w", i, err)
		}
		states = append(states, &ruleState[T]{rule: r})
	}
	return &Engine[T]{next: next, states: states}, nil
}

// Next returns the next output token, consuming as much of the source as
// needed to decide one. It reports false once the source is exhausted and
// all decided output has been served.
func (e *Engine[T]) Next() (T, bool) {
	for len(e.ready) == 0 && !e.done {
		e.fill()
	}
	if len(e.ready) == 0 {
		var zero T
		return zero, false
	}
	tok := e.ready[0]
	e.ready = e.ready[1:]
	return tok, true
}

// Seq exposes the remaining output as a single-use iterator over Next.
func (e *Engine[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			tok, ok := e.Next()
			if !ok {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Abort marks the source as failed. No further input is consumed, and
// pending tokens held back for a possible match are discarded instead of
// drained, so the output ends at the last finally resolved position.
func (e *Engine[T]) Abort() {
	e.aborted = true
	e.done = true
	e.pending = e.pending[:0]
}

// Replacements returns the number of matches committed so far.
func (e *Engine[T]) Replacements() int {
	return e.commits
}

// fill consumes source tokens until one decision is made: either a flush
// of tokens that can no longer open into a match, or a committed match.
// It returns without a decision only when the source is exhausted.
func (e *Engine[T]) fill() {
	for {
		tok, ok := e.next()
		if !ok {
			e.done = true
			e.drain()
			return
		}
		e.index++
		e.pending = append(e.pending, tok)

		matched := -1
		for i, st := range e.states {
			if st.advance(e.index, tok) && matched < 0 {
				matched = i
			}
		}

		if matched >= 0 {
			e.commit(e.states[matched].rule)
			return
		}

		if bound := e.flushBound(); bound > e.flushed {
			e.flush(bound)
			return
		}
	}
}

// flushBound computes the highest stream position no rule can still pull
// into a match. The binding constraint is each rule's oldest open
// candidate.
func (e *Engine[T]) flushBound() int {
	bound := e.index
	for _, st := range e.states {
		if b := st.flushBound(e.index); b < bound {
			bound = b
		}
	}
	return bound
}

// flush releases pending tokens up to stream position bound verbatim.
func (e *Engine[T]) flush(bound int) {
	n := bound - e.flushed
	e.ready = append(e.ready, e.pending[:n]...)
	e.pending = e.pending[:copy(e.pending, e.pending[n:])]
	e.flushed = bound
}

// commit finalizes a match of r ending at the current position. Tokens
// still pending ahead of the matched span were held back only by another
// rule's older candidate; they are final now and go out verbatim before
// the replacement. Every rule's candidates are then cleared: scanning
// resumes strictly after the replaced span, so no partial match that
// started inside it survives.
func (e *Engine[T]) commit(r Rule[T]) {
	start := e.index - len(r.From) + 1
	if n := start - 1 - e.flushed; n > 0 {
		e.ready = append(e.ready, e.pending[:n]...)
	}
	for _, st := range e.states {
		st.reset()
	}
	e.ready = append(e.ready, r.To...)
	e.pending = e.pending[:0]
	e.flushed = e.index
	e.commits++
}

// drain runs once the source is exhausted. Remaining pending tokens go
// out verbatim since no further input can complete an open match. After
// an Abort nothing beyond the finally resolved prefix may be emitted, so
// pending is discarded instead.
func (e *Engine[T]) drain() {
	if e.aborted {
		e.pending = e.pending[:0]
		return
	}
	if len(e.pending) > 0 {
		e.ready = append(e.ready, e.pending...)
		e.pending = e.pending[:0]
		e.flushed = e.index
	}
	for _, st := range e.states {
		st.reset()
	}
}
