package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/fhuszti/memorials-ms-go/internal/port"
)

// CacheTTL is how long a rendered memorial stays cached.
const CacheTTL = 5 * time.Minute

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderGetMemorial fetches memorial details either from cache or from the
// wrapped use case. It returns the JSON encoded output and a quoted ETag
// string.
func (r *httpRenderer) RenderGetMemorial(ctx context.Context, getter port.MemorialGetter, slug string) ([]byte, string, error) {
	raw, err := r.cache.GetMemorialDetails(ctx, slug)
	etag, errEtag := r.cache.GetEtagMemorialDetails(ctx, slug)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := getter.GetMemorial(ctx, slug)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	r.cache.SetMemorialDetails(ctx, slug, raw, CacheTTL)
	r.cache.SetEtagMemorialDetails(ctx, slug, etag, CacheTTL)

	return raw, etag, nil
}
