package transcriber

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"quiz-scribe/internal/config"
	"quiz-scribe/internal/util"
)

const EngineWhisper = "whisper"

// WhisperCLITranscriber shells out to the openai-whisper command line tool.
// The .txt output is preferred; stdout, which carries timestamp markers, is the fallback.
type WhisperCLITranscriber struct {
	binary string
	model  string
	run    util.CommandRunner
	logger *zap.Logger
}

func NewWhisperCLITranscriber(cfg config.WhisperConfig, logger *zap.Logger) *WhisperCLITranscriber {
	w := &WhisperCLITranscriber{
		binary: cfg.Binary,
		model:  cfg.Model,
		run:    util.RunCommand,
		logger: logger,
	}
	if w.binary == "" {
		w.binary = "whisper"
	}
	if w.model == "" {
		w.model = "base"
	}
	return w
}

func (w *WhisperCLITranscriber) Name() string { return EngineWhisper }

func (w *WhisperCLITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	outDir := filepath.Dir(audioPath)
	w.logger.Info("Starting Whisper transcription", zap.String("model", w.model))

	stdout, err := w.run(ctx, w.binary, audioPath,
		"--model", w.model,
		"--output_format", "txt",
		"--output_dir", outDir,
	)
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	if data, err := os.ReadFile(filepath.Join(outDir, base+".txt")); err == nil {
		return strings.TrimSpace(string(data)), nil
	}
	w.logger.Debug("Whisper text file missing, using stdout")
	return strings.TrimSpace(string(stdout)), nil
}
