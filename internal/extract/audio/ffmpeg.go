package audio

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Processor abstracts the ffmpeg/ffprobe invocations so the transcriber can
// be tested without the binaries installed.
type Processor interface {
	// Duration returns the total duration of the stream in seconds.
	Duration(ctx context.Context, path string) (float64, error)
	// Normalize converts the stream to 16kHz mono s16 WAV with loudness
	// normalization.
	Normalize(ctx context.Context, src, dst string) error
	// Cut extracts [start, start+duration) from a normalized WAV into dst.
	Cut(ctx context.Context, src, dst string, start, duration float64) error
}

type ffmpegProcessor struct{}

func NewFFmpegProcessor() Processor { return ffmpegProcessor{} }

func (ffmpegProcessor) Duration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", path)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe output %q: %w", strings.TrimSpace(string(out)), err)
	}
	return duration, nil
}

func (ffmpegProcessor) Normalize(ctx context.Context, src, dst string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", "-y", "-i", src,
		"-ar", "16000", "-ac", "1", "-sample_fmt", "s16",
		"-af", "loudnorm", dst)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg normalize: %w", err)
	}
	return nil
}

func (ffmpegProcessor) Cut(ctx context.Context, src, dst string, start, duration float64) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-ss", strconv.FormatFloat(start, 'f', 3, 64),
		"-t", strconv.FormatFloat(duration, 'f', 3, 64),
		"-i", src, dst)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg cut: %w", err)
	}
	return nil
}
