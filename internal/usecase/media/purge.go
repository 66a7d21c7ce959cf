package media

import (
	"fmt"
	"log"

	"golang.org/x/net/context"

	"github.com/fhuszti/memorials-ms-go/internal/port"
)

type prefixPurgerSrv struct {
	strg port.Storage
}

// compile-time check: *prefixPurgerSrv must satisfy port.PrefixPurger
var _ port.PrefixPurger = (*prefixPurgerSrv)(nil)

// NewPrefixPurger constructs a PrefixPurger implementation.
func NewPrefixPurger(strg port.Storage) port.PrefixPurger {
	return &prefixPurgerSrv{strg: strg}
}

// PurgePrefix lists every object under prefix, then deletes the accumulated
// keys in batches of DeleteBatchSize. Listing is fully exhausted before the
// first delete call. An empty prefix is a no-op.
func (s *prefixPurgerSrv) PurgePrefix(ctx context.Context, prefix string) error {
	keys, err := s.strg.ListPrefix(ctx, prefix)
	if err != nil {
		return fmt.Errorf("listing objects under prefix %q failed: %w", prefix, err)
	}
	if len(keys) == 0 {
		return nil
	}

	for start := 0; start < len(keys); start += DeleteBatchSize {
		end := min(start+DeleteBatchSize, len(keys))
		if err := s.strg.RemoveFiles(ctx, keys[start:end]); err != nil {
			return fmt.Errorf("deleting batch %d-%d under prefix %q failed: %w", start, end, prefix, err)
		}
	}

	log.Printf("purged %d objects under prefix %q", len(keys), prefix)
	return nil
}
