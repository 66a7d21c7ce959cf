package video

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fhuszti/memorials-ms-go/internal/port"
	"github.com/fhuszti/memorials-ms-go/internal/usecase/media"
)

// MaxFileSize is the hard cap on an inline video payload.
const MaxFileSize = 50 * 1024 * 1024 // 50 MB

// DefaultTimeout bounds one external transcode invocation. Without it an
// unresponsive encoder would defeat the fallback-to-original policy.
const DefaultTimeout = 2 * time.Minute

var AllowedMimeTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
}

type Transcoder struct {
	runner  Runner
	timeout time.Duration
}

// compile-time check: *Transcoder must satisfy port.VideoTranscoder
var _ port.VideoTranscoder = (*Transcoder)(nil)

func NewTranscoder(runner Runner, timeout time.Duration) *Transcoder {
	log.Println("initialising video transcoder...")
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Transcoder{runner: runner, timeout: timeout}
}

// Transcode validates declared type and size, then recompresses the video
// to H.264/AAC in an mp4 container. A failed recompression is non-fatal:
// the original bytes are kept so the upload can still go through, oversized.
func (t *Transcoder) Transcode(ctx context.Context, data []byte, mimeType string) (port.TranscodeOutput, error) {
	if !AllowedMimeTypes[mimeType] {
		return port.TranscodeOutput{}, fmt.Errorf("%w: %q (allowed types: video/mp4, video/webm, video/quicktime)", media.ErrUnsupportedMediaType, mimeType)
	}
	if len(data) > MaxFileSize {
		return port.TranscodeOutput{}, fmt.Errorf("%w: video is %d bytes (max %d MB)", media.ErrPayloadTooLarge, len(data), MaxFileSize/(1024*1024))
	}

	out, err := t.recompress(ctx, data, mimeType)
	if err != nil {
		log.Printf("video transcode failed, falling back to original bytes: %v", err)
		return port.TranscodeOutput{
			Bytes:     data,
			MimeType:  mimeType,
			Extension: media.ExtensionFor(media.FamilyVideo, mimeType),
			Fallback:  true,
		}, nil
	}

	return port.TranscodeOutput{Bytes: out, MimeType: "video/mp4", Extension: "mp4"}, nil
}

// recompress stages the bytes on disk, runs the external encoder and reads
// the result back. Both temp files are removed on every exit path.
func (t *Transcoder) recompress(ctx context.Context, data []byte, mimeType string) ([]byte, error) {
	inFile, err := os.CreateTemp("", "video_in_*."+media.ExtensionFor(media.FamilyVideo, mimeType))
	if err != nil {
		return nil, fmt.Errorf("video: could not create temp input file: %w", err)
	}
	defer func(name string) {
		if err := os.Remove(name); err != nil {
			log.Printf("failed to remove in temp file %q: %v", name, err)
		}
	}(inFile.Name())

	if _, err := inFile.Write(data); err != nil {
		_ = inFile.Close()
		return nil, fmt.Errorf("video: failed to write temp input file: %w", err)
	}
	_ = inFile.Close()

	outFile, err := os.CreateTemp("", "video_out_*.mp4")
	if err != nil {
		return nil, fmt.Errorf("video: could not create temp output file: %w", err)
	}
	_ = outFile.Close()
	defer func(name string) {
		if err := os.Remove(name); err != nil {
			log.Printf("failed to remove out temp file %q: %v", name, err)
		}
	}(outFile.Name())

	runCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	if err := t.runner.Run(runCtx, inFile.Name(), outFile.Name()); err != nil {
		return nil, err
	}

	out, err := os.ReadFile(outFile.Name())
	if err != nil {
		return nil, fmt.Errorf("video: failed to read transcoded file: %w", err)
	}
	return out, nil
}
