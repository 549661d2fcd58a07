package text

import (
	"bufio"
	"io"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/replacerc/pkg/replace"
	"github.com/walteh/replacerc/pkg/rules"
)

// Reader applies a replacement rule set to the bytes of an underlying
// reader, producing transformed bytes lazily. A read failure from the
// underlying reader is returned as-is once all finally decided output has
// been served; bytes held back for a possible match are never emitted
// after a failure.
type Reader struct {
	eng *replace.Engine[byte]
	br  *bufio.Reader
	err error // sticky source error, never io.EOF
}

// NewReader wraps r with the replacements declared in set.
func NewReader(r io.Reader, set rules.RuleSet) (*Reader, error) {
	compiled, err := set.Compile()
	if err != nil {
		return nil, errors.Errorf("compiling rules: %w", err)
	}

	rd := &Reader{br: bufio.NewReader(r)}
	eng, err := replace.New(rd.source, compiled...)
	if err != nil {
		return nil, errors.Errorf("building engine: %w", err)
	}
	rd.eng = eng
	return rd, nil
}

// source feeds the engine one byte at a time. On a non-EOF error the
// engine is aborted so it will not drain undecided bytes into the output.
func (r *Reader) source() (byte, bool) {
	b, err := r.br.ReadByte()
	if err != nil {
		if err != io.EOF {
			r.err = err
			r.eng.Abort()
		}
		return 0, false
	}
	return b, true
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, ok := r.eng.Next()
		if !ok {
			break
		}
		p[n] = b
		n++
	}
	if n > 0 {
		return n, nil
	}
	if r.err != nil {
		return 0, r.err
	}
	return 0, io.EOF
}

// Replacements returns the number of matches replaced so far.
func (r *Reader) Replacements() int {
	return r.eng.Replacements()
}
