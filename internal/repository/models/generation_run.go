package models

import "time"

// GenerationRun maps a row of quiz_generation_runs.
type GenerationRun struct {
	ID                 string    `db:"ID"`
	QuizID             string    `db:"QUIZ_ID"`
	Source             string    `db:"SOURCE"`
	TranscriptChars    int64     `db:"TRANSCRIPT_CHARS"`
	SentenceCount      int64     `db:"SENTENCE_COUNT"`
	ImportantWordCount int64     `db:"IMPORTANT_WORD_COUNT"`
	ItemCount          int64     `db:"ITEM_COUNT"`
	TrueFalseCount     int64     `db:"TRUE_FALSE_COUNT"`
	MCQCount           int64     `db:"MCQ_COUNT"`
	DurationMS         int64     `db:"DURATION_MS"`
	CreatedAt          time.Time `db:"CREATED_AT"`
}
