package media

import (
	"context"
	"fmt"

	"github.com/fhuszti/memorials-ms-go/internal/port"
	"golang.org/x/sync/errgroup"
)

// ProcessBatch runs items through the pipeline in fixed-size waves. Items
// inside a wave are processed concurrently; the next wave only starts once
// the previous one fully completed. Result order matches input order.
//
// A single failing item fails the whole batch with the first error
// encountered. Siblings already in flight run to completion regardless:
// their uploads are accepted as orphan objects, cleaned up by the prefix
// purger when the memorial is eventually deleted.
func (s *processorSrv) ProcessBatch(ctx context.Context, slug string, kind port.MediaKind, items []string) ([]string, error) {
	if len(items) == 0 {
		return []string{}, nil
	}

	waveSize := ImageWaveSize
	if kind == port.MediaKindVideo {
		waveSize = VideoWaveSize
	}

	results := make([]string, len(items))
	for start := 0; start < len(items); start += waveSize {
		end := min(start+waveSize, len(items))

		// deliberately not errgroup.WithContext: a failure must not cancel
		// siblings mid-upload
		var g errgroup.Group
		for i := start; i < end; i++ {
			i, item := i, items[i]
			g.Go(func() error {
				url, err := s.ProcessOne(ctx, slug, kind, item)
				if err != nil {
					return fmt.Errorf("%s item %d: %w", kind, i, err)
				}
				results[i] = url
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return results, nil
}
