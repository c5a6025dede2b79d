package quizgen

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"quiz-scribe/internal/config"
	"quiz-scribe/internal/domain"
	"quiz-scribe/internal/nlp"
)

const tracerName = "quiz-scribe/internal/quizgen"

// displaySeparator joins sentences in the human-facing transcript.
const displaySeparator = "\n\n"

// Input is one transcript to turn into a quiz.
type Input struct {
	Transcript string
	// QuizID is used as-is when set; otherwise a random UUID is assigned.
	QuizID string
	// RequireItems turns an item-less result into a NoMaterial error.
	RequireItems bool
}

// Pipeline runs normalization, analysis and synthesis for one transcript.
// It is safe for concurrent use; every run owns its own Random.
type Pipeline struct {
	analyzer *nlp.Analyzer
	synth    *Synthesizer
	newRand  RandomFactory
	logger   *zap.Logger
	tracer   trace.Tracer
}

type Option func(*Pipeline)

// WithRandomFactory overrides the randomness used by each run.
func WithRandomFactory(f RandomFactory) Option {
	return func(p *Pipeline) {
		p.newRand = f
	}
}

func NewPipeline(analyzer *nlp.Analyzer, cfg config.GenerationConfig, logger *zap.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Pipeline{
		analyzer: analyzer,
		synth:    NewSynthesizer(analyzer, cfg.MaxItems, logger),
		newRand:  NewRandomFactory(cfg.Seed),
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run generates a quiz. The only terminal failure is a transcript that is
// empty after normalization, plus NoMaterial when in.RequireItems is set.
func (p *Pipeline) Run(ctx context.Context, in Input) (*domain.GeneratedQuiz, error) {
	ctx, span := p.tracer.Start(ctx, "quizgen.Run")
	defer span.End()

	quizID := in.QuizID
	if quizID == "" {
		quizID = uuid.NewString()
	}
	span.SetAttributes(attribute.String("quiz.id", quizID))

	clean := p.normalize(ctx, in.Transcript)
	if clean == "" {
		span.SetAttributes(attribute.Bool("quiz.empty_transcript", true))
		return nil, domain.NewEmptyTranscriptError()
	}

	analysis, err := p.analyze(ctx, clean)
	if err != nil {
		span.RecordError(err)
		return nil, domain.NewInternalError("failed to analyze transcript", err)
	}

	_, synthSpan := p.tracer.Start(ctx, "quizgen.Synthesize")
	items := p.synth.Synthesize(analysis.Sentences, analysis.ImportantWords, quizID, p.newRand())
	synthSpan.SetAttributes(attribute.Int("quiz.items", len(items)))
	synthSpan.End()

	quiz := &domain.GeneratedQuiz{
		ID:                 quizID,
		Transcript:         strings.Join(analysis.Sentences, displaySeparator),
		NormalizedText:     clean,
		SentenceCount:      len(analysis.Sentences),
		ImportantWordCount: len(analysis.ImportantWords),
		Items:              items,
	}

	p.logger.Info("Quiz generated",
		zap.String("quiz_id", quizID),
		zap.Int("sentences", quiz.SentenceCount),
		zap.Int("important_words", quiz.ImportantWordCount),
		zap.Int("items", len(items)),
		zap.Int("true_false", quiz.CountByType(domain.QuestionTypeTrueFalse)),
		zap.Int("mcq", quiz.CountByType(domain.QuestionTypeMultipleChoice)))

	if len(items) == 0 && in.RequireItems {
		return nil, domain.NewNoMaterialError(quizID)
	}
	return quiz, nil
}

func (p *Pipeline) normalize(ctx context.Context, raw string) string {
	_, span := p.tracer.Start(ctx, "quizgen.Normalize")
	defer span.End()
	clean := nlp.Normalize(raw)
	span.SetAttributes(
		attribute.Int("transcript.raw_bytes", len(raw)),
		attribute.Int("transcript.clean_bytes", len(clean)))
	return clean
}

func (p *Pipeline) analyze(ctx context.Context, clean string) (*nlp.Analysis, error) {
	_, span := p.tracer.Start(ctx, "quizgen.Analyze")
	defer span.End()
	analysis, err := p.analyzer.Analyze(clean)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("transcript.sentences", len(analysis.Sentences)),
		attribute.Int("transcript.important_words", len(analysis.ImportantWords)))
	return analysis, nil
}
