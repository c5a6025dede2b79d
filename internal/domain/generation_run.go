package domain

import (
	"context"
	"time"
)

// GenerationSource tells where a transcript came from.
type GenerationSource string

const (
	SourceText  GenerationSource = "text"
	SourceMedia GenerationSource = "media"
)

// GenerationRun holds statistics about one pipeline run. Quiz content is never stored.
type GenerationRun struct {
	ID                 string
	QuizID             string
	Source             GenerationSource
	TranscriptChars    int
	SentenceCount      int
	ImportantWordCount int
	ItemCount          int
	TrueFalseCount     int
	MCQCount           int
	DurationMS         int64
	CreatedAt          time.Time
}

// NewGenerationRun summarizes a generated quiz.
func NewGenerationRun(quiz *GeneratedQuiz, source GenerationSource, took time.Duration) *GenerationRun {
	return &GenerationRun{
		QuizID:             quiz.ID,
		Source:             source,
		TranscriptChars:    len([]rune(quiz.NormalizedText)),
		SentenceCount:      quiz.SentenceCount,
		ImportantWordCount: quiz.ImportantWordCount,
		ItemCount:          len(quiz.Items),
		TrueFalseCount:     quiz.CountByType(QuestionTypeTrueFalse),
		MCQCount:           quiz.CountByType(QuestionTypeMultipleChoice),
		DurationMS:         took.Milliseconds(),
		CreatedAt:          time.Now(),
	}
}

// Validate validates the run before it is stored
func (r *GenerationRun) Validate() error {
	if r.QuizID == "" {
		return NewInvalidInputError("quiz ID is required")
	}
	if r.Source != SourceText && r.Source != SourceMedia {
		return NewInvalidInputError("unknown generation source: " + string(r.Source))
	}
	if r.ItemCount != r.TrueFalseCount+r.MCQCount {
		return NewInvalidInputError("item count does not match per-type counts")
	}
	return nil
}

// GenerationRunRepository persists run statistics.
type GenerationRunRepository interface {
	SaveRun(ctx context.Context, run *GenerationRun) error
	ListRecentRuns(ctx context.Context, limit int) ([]*GenerationRun, error)
}
