package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "transcript",
			objectType:  "media",
			identifier:  "123",
			paramsKey:   nil,
			expectedKey: "quizscribe:transcript:media:123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "transcript",
			objectType:  "media",
			identifier:  "123",
			paramsKey:   []string{},
			expectedKey: "quizscribe:transcript:media:123",
		},
		{
			name:        "with one paramsKey",
			serviceName: "transcript",
			objectType:  "media",
			identifier:  "abc",
			paramsKey:   []string{"whisper"},
			expectedKey: "quizscribe:transcript:media:abc:whisper",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "run",
			objectType:  "stats",
			identifier:  "xyz",
			paramsKey:   []string{"p1", "p2", "p3"},
			expectedKey: "quizscribe:run:stats:xyz:p1_p2_p3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestTranscriptKey(t *testing.T) {
	got := TranscriptKey("deadbeef", "openai")
	if got != "quizscribe:transcript:media:deadbeef:openai" {
		t.Errorf("TranscriptKey() = %v", got)
	}
}
