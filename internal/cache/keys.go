package cache

import "strings"

const (
	GlobalKeyPrefix = "quizscribe"
)

// GenerateCacheKey joins prefix, service, object type and identifier with ":".
// Extra params are joined by "_" and appended as one more segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// TranscriptKey addresses a cached transcript by media content hash and engine.
func TranscriptKey(mediaHash, engine string) string {
	return GenerateCacheKey("transcript", "media", mediaHash, engine)
}
