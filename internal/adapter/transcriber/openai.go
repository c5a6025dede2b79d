package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"quiz-scribe/internal/config"
)

const (
	EngineOpenAI = "openai"

	defaultOpenAIModel = "whisper-1"
)

// OpenAITranscriber sends audio to the OpenAI transcriptions endpoint.
type OpenAITranscriber struct {
	client openai.Client
	model  string
}

func NewOpenAITranscriber(cfg config.OpenAIConfig, extra ...option.RequestOption) (*OpenAITranscriber, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	opts = append(opts, extra...)

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAITranscriber{client: openai.NewClient(opts...), model: model}, nil
}

func (o *OpenAITranscriber) Name() string { return EngineOpenAI }

func (o *OpenAITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	resp, err := o.client.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:           file,
		Model:          openai.AudioModel(o.model),
		ResponseFormat: openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}
	if resp == nil {
		return "", errors.New("openai transcription returned nil response")
	}
	return strings.TrimSpace(resp.Text), nil
}
