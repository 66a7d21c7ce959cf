package port

import (
	"context"
	"io"
)

// MediaKind decides the storage key prefix and the wave size of a batch.
type MediaKind string

const (
	MediaKindMain    MediaKind = "main"
	MediaKindGallery MediaKind = "gallery"
	MediaKindVideo   MediaKind = "video"
)

// MediaProcessor runs media strings through the ingestion pipeline and
// returns the public URLs of the stored results.
type MediaProcessor interface {
	// ProcessOne handles a single media string: inline payloads are decoded,
	// converted and uploaded; already-hosted URLs pass through unchanged.
	ProcessOne(ctx context.Context, slug string, kind MediaKind, item string) (string, error)
	// ProcessBatch handles an ordered list of media strings in bounded
	// concurrent waves. Output order matches input order.
	ProcessBatch(ctx context.Context, slug string, kind MediaKind, items []string) ([]string, error)
}

// PrefixPurger deletes every stored object under a storage prefix.
type PrefixPurger interface {
	PurgePrefix(ctx context.Context, prefix string) error
}

// ImageNormaliser converts raw image bytes into the fixed output format.
type ImageNormaliser interface {
	Normalise(r io.Reader) ([]byte, error)
}

// TranscodeOutput is the result of a video transcode. Fallback is true when
// recompression failed and the original bytes were kept instead.
type TranscodeOutput struct {
	Bytes     []byte
	MimeType  string
	Extension string
	Fallback  bool
}

// VideoTranscoder validates and recompresses raw video bytes.
type VideoTranscoder interface {
	Transcode(ctx context.Context, data []byte, mimeType string) (TranscodeOutput, error)
}
