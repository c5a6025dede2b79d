// Package transcriber provides the speech-to-text engines selectable by
// transcription.engine.
package transcriber

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"quiz-scribe/internal/config"
	"quiz-scribe/internal/domain"
)

// New builds the configured engine. The returned close func is never nil.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (domain.TranscriptionEngine, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Transcription.Engine {
	case "", EngineWhisper:
		return NewWhisperCLITranscriber(cfg.Transcription.Whisper, logger), noop, nil
	case EngineOpenAI:
		t, err := NewOpenAITranscriber(cfg.Transcription.OpenAI)
		if err != nil {
			return nil, noop, err
		}
		return t, noop, nil
	case EngineGCP:
		t, err := NewGCPSpeechTranscriber(ctx, cfg.Transcription.GCP, cfg.Transcoder)
		if err != nil {
			return nil, noop, err
		}
		return t, t.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown transcription engine %q", cfg.Transcription.Engine)
	}
}
