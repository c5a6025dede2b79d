package media

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quiz-scribe/internal/config"
)

func TestFFmpegTranscoder_ExtractAudio(t *testing.T) {
	tr := NewFFmpegTranscoder(config.TranscoderConfig{}, zap.NewNop())

	var gotName string
	var gotArgs []string
	tr.run = func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		return nil, nil
	}

	out, err := tr.ExtractAudio(context.Background(), "/tmp/job/input_video.mp4", "/tmp/job")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/job/input_video_audio.wav", out)
	assert.Equal(t, "ffmpeg", gotName)
	assert.Equal(t, []string{
		"-y", "-i", "/tmp/job/input_video.mp4",
		"-vn", "-ac", "1", "-ar", "16000",
		"-acodec", "pcm_s16le", "-f", "wav",
		"/tmp/job/input_video_audio.wav",
	}, gotArgs)
}

func TestFFmpegTranscoder_CustomConfig(t *testing.T) {
	tr := NewFFmpegTranscoder(config.TranscoderConfig{FFmpegPath: "/opt/ffmpeg", SampleRate: 8000, Channels: 2}, zap.NewNop())

	var gotName string
	var gotArgs []string
	tr.run = func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		return nil, nil
	}

	_, err := tr.ExtractAudio(context.Background(), "clip.webm", "/work")
	require.NoError(t, err)
	assert.Equal(t, "/opt/ffmpeg", gotName)
	assert.Contains(t, gotArgs, "8000")
	assert.Contains(t, gotArgs, "2")
}

func TestFFmpegTranscoder_Failure(t *testing.T) {
	tr := NewFFmpegTranscoder(config.TranscoderConfig{}, zap.NewNop())
	tr.run = func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("exit status 1: Invalid data found when processing input")
	}

	out, err := tr.ExtractAudio(context.Background(), "broken.mp4", "/tmp")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), "Invalid data")
}
