package domain

import "context"

// MediaTranscoder converts an uploaded video into mono 16 kHz PCM WAV audio.
type MediaTranscoder interface {
	// ExtractAudio writes the audio track of videoPath into workDir and returns its path.
	ExtractAudio(ctx context.Context, videoPath, workDir string) (string, error)
}

// TranscriptionEngine turns an audio file into raw transcript text.
// The text may contain bracketed timestamp markers.
type TranscriptionEngine interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
	Name() string
}
