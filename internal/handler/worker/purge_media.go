package worker

import (
	"context"
	"fmt"
	"log"

	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/task"
)

// PurgeMemorialMediaHandler handles a purge-memorial-media task. It converts
// the incoming task payload to the input expected by the prefix purger and
// delegates the call.
func PurgeMemorialMediaHandler(ctx context.Context, p task.PurgeMemorialMediaPayload, svc port.PrefixPurger) error {
	if p.Prefix == "" {
		err := fmt.Errorf("empty storage prefix")
		log.Printf("❌  Invalid purge payload: %v", err)
		return err
	}

	if err := svc.PurgePrefix(ctx, p.Prefix); err != nil {
		log.Printf("❌  Failed to purge storage prefix %q: %v", p.Prefix, err)
		return err
	}

	log.Printf("✅  Successfully purged storage prefix %q", p.Prefix)
	return nil
}
