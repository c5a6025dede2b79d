package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"quiz-scribe/internal/config"
	"quiz-scribe/internal/domain"
	"quiz-scribe/internal/util"
)

// FFmpegTranscoder extracts a PCM WAV track from uploaded video with the ffmpeg CLI.
type FFmpegTranscoder struct {
	binary     string
	sampleRate int
	channels   int
	run        util.CommandRunner
	logger     *zap.Logger
}

func NewFFmpegTranscoder(cfg config.TranscoderConfig, logger *zap.Logger) *FFmpegTranscoder {
	t := &FFmpegTranscoder{
		binary:     cfg.FFmpegPath,
		sampleRate: cfg.SampleRate,
		channels:   cfg.Channels,
		run:        util.RunCommand,
		logger:     logger,
	}
	if t.binary == "" {
		t.binary = "ffmpeg"
	}
	if t.sampleRate <= 0 {
		t.sampleRate = 16000
	}
	if t.channels <= 0 {
		t.channels = 1
	}
	return t
}

var _ domain.MediaTranscoder = (*FFmpegTranscoder)(nil)

// Available reports whether the ffmpeg binary can be found.
func (t *FFmpegTranscoder) Available() bool {
	_, err := exec.LookPath(t.binary)
	return err == nil
}

// ExtractAudio writes <workDir>/<video base>_audio.wav.
func (t *FFmpegTranscoder) ExtractAudio(ctx context.Context, videoPath, workDir string) (string, error) {
	if workDir == "" {
		workDir = os.TempDir()
	}
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	out := filepath.Join(workDir, base+"_audio.wav")

	if _, err := t.run(ctx, t.binary, t.args(videoPath, out)...); err != nil {
		return "", fmt.Errorf("ffmpeg: %w", err)
	}
	t.logger.Info("Audio conversion completed", zap.String("audio_path", out))
	return out, nil
}

func (t *FFmpegTranscoder) args(in, out string) []string {
	return []string{
		"-y", "-i", in,
		"-vn",
		"-ac", strconv.Itoa(t.channels),
		"-ar", strconv.Itoa(t.sampleRate),
		"-acodec", "pcm_s16le",
		"-f", "wav",
		out,
	}
}
