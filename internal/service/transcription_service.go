package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"quiz-scribe/internal/cache"
	"quiz-scribe/internal/config"
	"quiz-scribe/internal/domain"
	"quiz-scribe/internal/logger"
)

const defaultTranscriptTTL = 24 * time.Hour

// TranscriptionService turns an uploaded video into raw transcript text.
type TranscriptionService interface {
	TranscribeVideo(ctx context.Context, filename string, data []byte) (string, error)
	EngineName() string
}

type transcriptionService struct {
	transcoder domain.MediaTranscoder
	engine     domain.TranscriptionEngine
	cache      domain.Cache
	ttl        time.Duration
}

// NewTranscriptionService wires the media path. cache may be nil.
func NewTranscriptionService(
	transcoder domain.MediaTranscoder,
	engine domain.TranscriptionEngine,
	cache domain.Cache,
	cfg *config.Config,
) TranscriptionService {
	return &transcriptionService{
		transcoder: transcoder,
		engine:     engine,
		cache:      cache,
		ttl:        cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Transcript, defaultTranscriptTTL),
	}
}

func (s *transcriptionService) EngineName() string {
	return s.engine.Name()
}

// TranscribeVideo caches transcripts by content hash and engine, so a
// re-upload of the same file skips transcoding and transcription.
func (s *transcriptionService) TranscribeVideo(ctx context.Context, filename string, data []byte) (string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "TranscriptionService.TranscribeVideo")
	defer span.End()

	if len(data) == 0 {
		return "", domain.NewInvalidInputError("Uploaded file is empty")
	}
	log := logger.Get().With(zap.String("engine", s.engine.Name()), zap.Int("upload_bytes", len(data)))

	sum := sha256.Sum256(data)
	key := cache.TranscriptKey(hex.EncodeToString(sum[:]), s.engine.Name())
	span.SetAttributes(attribute.String("media.sha256", hex.EncodeToString(sum[:])))

	if cached, ok := s.lookup(ctx, key, log); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return cached, nil
	}

	workDir, err := os.MkdirTemp("", "quizscribe-*")
	if err != nil {
		return "", domain.NewInternalError("Failed to create temporary directory", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			log.Error("Error cleaning up temporary files", zap.String("dir", workDir), zap.Error(err))
		}
	}()

	videoPath := filepath.Join(workDir, "input_video"+uploadExt(filename))
	if err := os.WriteFile(videoPath, data, 0o600); err != nil {
		return "", domain.NewInternalError("Failed to save uploaded file", err)
	}
	log.Info("File saved successfully")

	audioPath, err := s.transcoder.ExtractAudio(ctx, videoPath, workDir)
	if err != nil {
		log.Error("Audio conversion failed", zap.Error(err))
		span.RecordError(err)
		return "", domain.NewTranscodingError(err)
	}

	started := time.Now()
	text, err := s.engine.Transcribe(ctx, audioPath)
	if err != nil {
		log.Error("Transcription failed", zap.Error(err))
		span.RecordError(err)
		return "", domain.NewTranscriptionError(s.engine.Name(), err)
	}
	log.Info("Transcription completed",
		zap.Duration("took", time.Since(started)),
		zap.Int("transcript_chars", len(text)))

	if strings.TrimSpace(text) != "" {
		s.store(ctx, key, text, log)
	}
	return text, nil
}

func (s *transcriptionService) lookup(ctx context.Context, key string, log *zap.Logger) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	val, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			log.Warn("Transcript cache read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	log.Info("Transcript cache hit", zap.String("key", key))
	return val, true
}

func (s *transcriptionService) store(ctx context.Context, key, text string, log *zap.Logger) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, text, s.ttl); err != nil {
		log.Warn("Transcript cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// uploadExt keeps a short alphanumeric extension so ffmpeg can probe the container.
func uploadExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) < 2 || len(ext) > 6 {
		return ".mp4"
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ".mp4"
		}
	}
	return ext
}
