package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"quiz-scribe/internal/domain"
	"quiz-scribe/internal/quizgen"
)

// --- MockQuizPipeline ---
type MockQuizPipeline struct {
	mock.Mock
}

func (m *MockQuizPipeline) Run(ctx context.Context, in quizgen.Input) (*domain.GeneratedQuiz, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedQuiz), args.Error(1)
}

// --- MockGenerationRunRepository ---
type MockGenerationRunRepository struct {
	mock.Mock
}

func (m *MockGenerationRunRepository) SaveRun(ctx context.Context, run *domain.GenerationRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockGenerationRunRepository) ListRecentRuns(ctx context.Context, limit int) ([]*domain.GenerationRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GenerationRun), args.Error(1)
}

// --- MockTranscriptionService ---
type MockTranscriptionService struct {
	mock.Mock
}

func (m *MockTranscriptionService) TranscribeVideo(ctx context.Context, filename string, data []byte) (string, error) {
	args := m.Called(ctx, filename, data)
	return args.String(0), args.Error(1)
}

func (m *MockTranscriptionService) EngineName() string {
	return m.Called().String(0)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockTranscoder ---
type MockTranscoder struct {
	mock.Mock
}

func (m *MockTranscoder) ExtractAudio(ctx context.Context, videoPath, workDir string) (string, error) {
	args := m.Called(ctx, videoPath, workDir)
	return args.String(0), args.Error(1)
}

// --- MockTranscriptionEngine ---
type MockTranscriptionEngine struct {
	mock.Mock
	name string
}

func (m *MockTranscriptionEngine) Transcribe(ctx context.Context, audioPath string) (string, error) {
	args := m.Called(ctx, audioPath)
	return args.String(0), args.Error(1)
}

func (m *MockTranscriptionEngine) Name() string {
	return m.name
}
