package video

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes one external transcode from inPath to outPath.
type Runner interface {
	Run(ctx context.Context, inPath, outPath string) error
}

// FFmpegRunner shells out to ffmpeg with a fixed H.264/AAC recipe:
// constant quality (CRF 26), 2 Mbps bitrate ceiling, 4 Mbps buffer,
// capped at 1080p preserving aspect ratio, faststart mp4 with a pixel
// format every common player handles.
type FFmpegRunner struct {
	bin string
}

var _ Runner = (*FFmpegRunner)(nil)

func NewFFmpegRunner(bin string) *FFmpegRunner {
	if bin == "" {
		bin = "ffmpeg"
	}
	return &FFmpegRunner{bin: bin}
}

func (r *FFmpegRunner) Run(ctx context.Context, inPath, outPath string) error {
	args := []string{
		"-y",
		"-i", inPath,
		"-c:v", "libx264",
		"-c:a", "aac",
		"-preset", "medium",
		"-crf", "26",
		"-maxrate", "2M",
		"-bufsize", "4M",
		"-vf", "scale=1920:1080:force_original_aspect_ratio=decrease",
		"-movflags", "+faststart",
		"-pix_fmt", "yuv420p",
		outPath,
	}

	cmd := exec.CommandContext(ctx, r.bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg: %v: %s", err, lastLine(&stderr))
	}
	return nil
}

func lastLine(buf *bytes.Buffer) string {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
