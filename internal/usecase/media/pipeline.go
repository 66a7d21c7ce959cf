package media

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/fhuszti/memorials-ms-go/internal/port"
)

type processorSrv struct {
	strg    port.Storage
	img     port.ImageNormaliser
	vid     port.VideoTranscoder
	uuidGen port.UUIDGen
}

// compile-time check: *processorSrv must satisfy port.MediaProcessor
var _ port.MediaProcessor = (*processorSrv)(nil)

// NewProcessor constructs a MediaProcessor implementation.
func NewProcessor(strg port.Storage, img port.ImageNormaliser, vid port.VideoTranscoder, uuidGen port.UUIDGen) port.MediaProcessor {
	return &processorSrv{strg: strg, img: img, vid: vid, uuidGen: uuidGen}
}

// ProcessOne classifies one media string, converts inline payloads to the
// fixed output format for their kind, uploads the result and returns its
// public URL. Already-hosted URLs are returned as-is.
func (s *processorSrv) ProcessOne(ctx context.Context, slug string, kind port.MediaKind, item string) (string, error) {
	family := FamilyImage
	if kind == port.MediaKindVideo {
		family = FamilyVideo
	}

	ref, err := Classify(item, family)
	if err != nil {
		return "", err
	}
	if ref.URL != "" {
		return ref.URL, nil
	}

	var (
		payload     []byte
		contentType string
		ext         string
	)
	switch family {
	case FamilyVideo:
		out, err := s.vid.Transcode(ctx, ref.Inline.Bytes, ref.Inline.MimeType)
		if err != nil {
			return "", err
		}
		if out.Fallback {
			log.Printf("storing original %q bytes for %q after failed transcode", out.MimeType, slug)
		}
		payload = out.Bytes
		contentType = out.MimeType
		ext = out.Extension
	default:
		webpBytes, err := s.img.Normalise(bytes.NewReader(ref.Inline.Bytes))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMediaProcessing, err)
		}
		payload = webpBytes
		contentType = "image/webp"
		ext = "webp"
	}

	key := ObjectKey(slug, kind, s.uuidGen().String(), ext)
	opts := map[string]string{
		"Content-Type": contentType,
		// uploads never overwrite, so stored objects are immutable
		"Cache-Control": "public, max-age=31536000",
	}
	if err := s.strg.SaveFile(ctx, key, bytes.NewReader(payload), int64(len(payload)), opts); err != nil {
		return "", err
	}

	return s.strg.PublicURL(key), nil
}
