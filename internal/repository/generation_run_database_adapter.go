package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"quiz-scribe/internal/domain"
	"quiz-scribe/internal/repository/models"
	"quiz-scribe/internal/util"
)

const (
	insertGenerationRunQuery = `INSERT INTO quiz_generation_runs
	(id, quiz_id, source, transcript_chars, sentence_count, important_word_count, item_count, true_false_count, mcq_count, duration_ms, created_at)
	VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11)`

	listRecentRunsQuery = `SELECT id, quiz_id, source, transcript_chars, sentence_count, important_word_count, item_count, true_false_count, mcq_count, duration_ms, created_at
	FROM quiz_generation_runs ORDER BY created_at DESC FETCH FIRST :1 ROWS ONLY`
)

type GenerationRunDatabaseAdapter struct {
	db *sqlx.DB
}

func NewGenerationRunDatabaseAdapter(db *sqlx.DB) domain.GenerationRunRepository {
	return &GenerationRunDatabaseAdapter{db: db}
}

// SaveRun assigns an ID and creation time when missing, then inserts the row.
func (r *GenerationRunDatabaseAdapter) SaveRun(ctx context.Context, run *domain.GenerationRun) error {
	if err := run.Validate(); err != nil {
		return err
	}
	if run.ID == "" {
		run.ID = util.NewULID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	m := toModelGenerationRun(run)
	_, err := r.db.ExecContext(ctx, insertGenerationRunQuery,
		m.ID, m.QuizID, m.Source, m.TranscriptChars, m.SentenceCount, m.ImportantWordCount,
		m.ItemCount, m.TrueFalseCount, m.MCQCount, m.DurationMS, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert generation run: %w", err)
	}
	return nil
}

// ListRecentRuns returns at most limit runs, newest first.
func (r *GenerationRunDatabaseAdapter) ListRecentRuns(ctx context.Context, limit int) ([]*domain.GenerationRun, error) {
	var rows []models.GenerationRun
	if err := r.db.SelectContext(ctx, &rows, listRecentRunsQuery, limit); err != nil {
		return nil, fmt.Errorf("failed to list generation runs: %w", err)
	}

	runs := make([]*domain.GenerationRun, len(rows))
	for i := range rows {
		runs[i] = toDomainGenerationRun(&rows[i])
	}
	return runs, nil
}

func toModelGenerationRun(run *domain.GenerationRun) *models.GenerationRun {
	return &models.GenerationRun{
		ID:                 run.ID,
		QuizID:             run.QuizID,
		Source:             string(run.Source),
		TranscriptChars:    int64(run.TranscriptChars),
		SentenceCount:      int64(run.SentenceCount),
		ImportantWordCount: int64(run.ImportantWordCount),
		ItemCount:          int64(run.ItemCount),
		TrueFalseCount:     int64(run.TrueFalseCount),
		MCQCount:           int64(run.MCQCount),
		DurationMS:         run.DurationMS,
		CreatedAt:          run.CreatedAt,
	}
}

func toDomainGenerationRun(m *models.GenerationRun) *domain.GenerationRun {
	return &domain.GenerationRun{
		ID:                 m.ID,
		QuizID:             m.QuizID,
		Source:             domain.GenerationSource(m.Source),
		TranscriptChars:    int(m.TranscriptChars),
		SentenceCount:      int(m.SentenceCount),
		ImportantWordCount: int(m.ImportantWordCount),
		ItemCount:          int(m.ItemCount),
		TrueFalseCount:     int(m.TrueFalseCount),
		MCQCount:           int(m.MCQCount),
		DurationMS:         m.DurationMS,
		CreatedAt:          m.CreatedAt,
	}
}
