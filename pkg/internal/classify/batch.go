package classify

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/Himan2899/SmartFileOrganizer/pkg/log"
)

// BatchClassifier fans a file batch out to the Client in fixed-size groups.
// All files within a group run concurrently; groups run strictly one after
// another with a fixed pacing delay, a courtesy throttle for the external
// rate limit. One file's failure never affects its siblings: failures are
// logged and omitted from the result map, no retry.
type BatchClassifier struct {
	client    *Client
	groupSize int
	limiter   *rate.Limiter
}

// NewBatchClassifier builds a batch classifier with the given group size and
// inter-group delay. Tests run with size 1 and delay 0.
func NewBatchClassifier(client *Client, groupSize int, delay time.Duration) *BatchClassifier {
	if groupSize < 1 {
		groupSize = 1
	}

	bc := &BatchClassifier{
		client:    client,
		groupSize: groupSize,
	}

	if delay > 0 {
		bc.limiter = rate.NewLimiter(rate.Every(delay), 1)
	}

	return bc
}

// ClassifyBatch returns a partial result map keyed by InputFile.Key. Only
// successfully classified files appear; documents skipped for lack of text
// are also omitted. The returned error is non-nil only when the context is
// cancelled between groups.
func (b *BatchClassifier) ClassifyBatch(ctx context.Context, files []*InputFile) (map[string]*Outcome, error) {
	l := log.Logger()
	results := make(map[string]*Outcome, len(files))

	var mu sync.Mutex

	l.Info().Int("files", len(files)).Int("group_size", b.groupSize).Msg("starting batch classification")

	for start := 0; start < len(files); start += b.groupSize {
		if b.limiter != nil {
			if err := b.limiter.Wait(ctx); err != nil {
				return results, err
			}
		}

		end := min(start+b.groupSize, len(files))

		var g errgroup.Group

		for _, file := range files[start:end] {
			g.Go(func() error {
				outcome, err := b.client.Classify(ctx, file)
				if err != nil {
					l.Warn().Err(err).Str("file", file.Name).Msg("classification failed, file omitted")
					return nil
				}

				if outcome == nil {
					return nil
				}

				mu.Lock()
				results[file.Key()] = outcome
				mu.Unlock()

				return nil
			})
		}

		_ = g.Wait()
	}

	l.Info().Int("classified", len(results)).Int("files", len(files)).Msg("batch classification complete")

	return results, nil
}
