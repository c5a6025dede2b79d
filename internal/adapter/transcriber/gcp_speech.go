package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"

	"quiz-scribe/internal/config"
)

const EngineGCP = "gcp"

type recognizeFunc func(ctx context.Context, req *speechpb.LongRunningRecognizeRequest) (*speechpb.LongRunningRecognizeResponse, error)

// GCPSpeechTranscriber runs Google Cloud Speech long-running recognition on
// inline LINEAR16 audio. Inline content is limited to about 10 MB.
type GCPSpeechTranscriber struct {
	client       *speech.Client
	recognize    recognizeFunc
	languageCode string
	sampleRate   int
	channels     int
}

func NewGCPSpeechTranscriber(ctx context.Context, cfg config.GCPSpeechConfig, tc config.TranscoderConfig) (*GCPSpeechTranscriber, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}

	g := &GCPSpeechTranscriber{
		client:       client,
		languageCode: cfg.LanguageCode,
		sampleRate:   tc.SampleRate,
		channels:     tc.Channels,
	}
	g.recognize = func(ctx context.Context, req *speechpb.LongRunningRecognizeRequest) (*speechpb.LongRunningRecognizeResponse, error) {
		op, err := client.LongRunningRecognize(ctx, req)
		if err != nil {
			return nil, err
		}
		return op.Wait(ctx)
	}
	return g, nil
}

func (g *GCPSpeechTranscriber) Name() string { return EngineGCP }

func (g *GCPSpeechTranscriber) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func (g *GCPSpeechTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	audio, err := os.ReadFile(audioPath)
	if err != nil {
		return "", err
	}
	if len(audio) == 0 {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	resp, err := g.recognize(ctx, &speechpb.LongRunningRecognizeRequest{
		Config: g.recognitionConfig(),
		Audio:  &speechpb.RecognitionAudio{AudioSource: &speechpb.RecognitionAudio_Content{Content: audio}},
	})
	if err != nil {
		return "", fmt.Errorf("speech longrunningrecognize: %w", err)
	}
	return joinTranscripts(resp), nil
}

func (g *GCPSpeechTranscriber) recognitionConfig() *speechpb.RecognitionConfig {
	lang := g.languageCode
	if lang == "" {
		lang = "en-US"
	}
	return &speechpb.RecognitionConfig{
		Encoding:                   speechpb.RecognitionConfig_LINEAR16,
		SampleRateHertz:            int32(g.sampleRate),
		AudioChannelCount:          int32(g.channels),
		LanguageCode:               lang,
		EnableAutomaticPunctuation: true,
	}
}

// joinTranscripts keeps the top alternative of every result.
func joinTranscripts(resp *speechpb.LongRunningRecognizeResponse) string {
	if resp == nil {
		return ""
	}
	parts := make([]string, 0, len(resp.GetResults()))
	for _, r := range resp.GetResults() {
		alts := r.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		if t := strings.TrimSpace(alts[0].GetTranscript()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
