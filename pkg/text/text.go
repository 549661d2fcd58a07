// Package text applies declarative replacement rule sets to byte streams,
// strings and readers, built on the single-pass engine in pkg/replace.
package text

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/replacerc/pkg/rules"
)

// Result contains the outcome of a streaming replacement
type Result struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// Replacements is the number of matches replaced
	Replacements int

	// Content is the transformed content
	Content []byte
}

// Replace streams content through a replacement engine built from set.
// All rules are active simultaneously in a single pass over the input;
// when two rules complete a match on the same byte, the rule declared
// first wins, and replacement text is never itself rewritten.
func Replace(ctx context.Context, content io.Reader, set rules.RuleSet) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	rd, err := NewReader(content, set)
	if err != nil {
		return nil, errors.Errorf("building replacer: %w", err)
	}

	out, err := io.ReadAll(rd)
	if err != nil {
		return nil, errors.Errorf("replacing content: %w", err)
	}

	n := rd.Replacements()
	logger.Debug().Int("replacements", n).Msg("content replaced")

	return &Result{
		WasModified:  n > 0,
		Replacements: n,
		Content:      out,
	}, nil
}

// ReplaceString applies set to s
func ReplaceString(ctx context.Context, s string, set rules.RuleSet) (string, error) {
	res, err := Replace(ctx, strings.NewReader(s), set)
	if err != nil {
		return "", err
	}
	return string(res.Content), nil
}

// ReplaceBytes applies set to b
func ReplaceBytes(ctx context.Context, b []byte, set rules.RuleSet) (*Result, error) {
	return Replace(ctx, bytes.NewReader(b), set)
}
