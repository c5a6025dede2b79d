package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"quiz-scribe/internal/domain"
	"quiz-scribe/internal/dto"
	"quiz-scribe/internal/logger"
	"quiz-scribe/internal/quizgen"
)

const tracerName = "quiz-scribe/internal/service"

// QuizPipeline runs the transcript-to-quiz pipeline. *quizgen.Pipeline implements it.
type QuizPipeline interface {
	Run(ctx context.Context, in quizgen.Input) (*domain.GeneratedQuiz, error)
}

// QuizGenerationService defines the quiz generation use cases
type QuizGenerationService interface {
	GenerateFromTranscript(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	GenerateFromMedia(ctx context.Context, filename string, data []byte, quizID string) (*dto.GenerateQuizResponse, error)
	ListRecentRuns(ctx context.Context, limit int) ([]*domain.GenerationRun, error)
}

type quizGenerationService struct {
	pipeline      QuizPipeline
	transcription TranscriptionService
	runs          domain.GenerationRunRepository
}

// NewQuizGenerationService creates the service. transcription and runs may be nil.
func NewQuizGenerationService(
	pipeline QuizPipeline,
	transcription TranscriptionService,
	runs domain.GenerationRunRepository,
) QuizGenerationService {
	return &quizGenerationService{
		pipeline:      pipeline,
		transcription: transcription,
		runs:          runs,
	}
}

func (s *quizGenerationService) GenerateFromTranscript(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	return s.generate(ctx, quizgen.Input{
		Transcript:   req.Transcript,
		QuizID:       req.QuizID,
		RequireItems: req.RequireItems,
	}, domain.SourceText)
}

func (s *quizGenerationService) GenerateFromMedia(ctx context.Context, filename string, data []byte, quizID string) (*dto.GenerateQuizResponse, error) {
	if s.transcription == nil {
		return nil, domain.NewInternalError("media transcription is not configured", nil)
	}
	transcript, err := s.transcription.TranscribeVideo(ctx, filename, data)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, quizgen.Input{Transcript: transcript, QuizID: quizID}, domain.SourceMedia)
}

func (s *quizGenerationService) generate(ctx context.Context, in quizgen.Input, source domain.GenerationSource) (*dto.GenerateQuizResponse, error) {
	started := time.Now()
	quiz, err := s.pipeline.Run(ctx, in)
	if err != nil {
		return nil, err
	}
	took := time.Since(started)

	resp, err := dto.NewGenerateQuizResponse(quiz)
	if err != nil {
		return nil, domain.NewInternalError("Failed to encode quiz", err)
	}

	s.recordRun(ctx, domain.NewGenerationRun(quiz, source, took))
	return resp, nil
}

// recordRun never fails the request; run statistics are best effort.
func (s *quizGenerationService) recordRun(ctx context.Context, run *domain.GenerationRun) {
	if s.runs == nil {
		return
	}
	if err := s.runs.SaveRun(ctx, run); err != nil {
		logger.Get().Warn("Failed to record generation run",
			zap.String("quiz_id", run.QuizID),
			zap.Error(err))
	}
}

func (s *quizGenerationService) ListRecentRuns(ctx context.Context, limit int) ([]*domain.GenerationRun, error) {
	if s.runs == nil {
		return []*domain.GenerationRun{}, nil
	}
	runs, err := s.runs.ListRecentRuns(ctx, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list generation runs", err)
	}
	return runs, nil
}
