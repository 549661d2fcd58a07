package text

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/replacerc/pkg/rules"
)

// ReplaceMany applies set to several named streams, one independent
// engine per stream. Streams run concurrently; each stream only sees the
// rules whose glob matches its name. The scan of any single stream stays
// a sequential single pass.
func ReplaceMany(ctx context.Context, inputs map[string]io.Reader, set rules.RuleSet) (map[string]*Result, error) {
	logger := zerolog.Ctx(ctx)

	var mu sync.Mutex
	results := make(map[string]*Result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	for name, content := range inputs {
		g.Go(func() error {
			res, err := Replace(ctx, content, set.For(name))
			if err != nil {
				return errors.Errorf("replacing %s: %w", name, err)
			}
			mu.Lock()
			results[name] = res
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug().Int("streams", len(results)).Msg("replaced all streams")
	return results, nil
}
