package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"quiz-scribe/internal/domain"
)

// GenerateQuizRequest is the body of POST /api/quizzes/generate
// @Description Transcript to turn into a quiz
type GenerateQuizRequest struct {
	Transcript string `json:"transcript" example:"The cat sat on the mat. [00:01] Dogs bark loudly at night."`
	// Optional pre-assigned quiz identifier (UUID)
	QuizID string `json:"quiz_id,omitempty" example:"4f6c1a52-8f2b-4a57-9a43-5b8f5d1f4b7e"`
	// Fail with NO_MATERIAL instead of returning an empty quiz
	RequireItems bool `json:"require_items,omitempty"`
}

// QuizQuestion is one generated item. Options and Answer are JSON-encoded
// strings so both question types share one record shape.
// @Description Generated quiz item
type QuizQuestion struct {
	QuizID           string `json:"quizId"`
	Type             string `json:"type" example:"mcq"`
	Question         string `json:"question"`
	Options          string `json:"options" example:"[\"cat\",\"night\",\"bark\",\"mat\"]"`
	Answer           string `json:"answer" example:"\"cat\""`
	Order            int    `json:"order" example:"1"`
	CorrectStatement string `json:"correct_statement"`
}

// GenerateQuizResponse is returned by both generation endpoints
// @Description Generated quiz
type GenerateQuizResponse struct {
	Transcript    string         `json:"transcript"`
	QuizID        string         `json:"quiz_id"`
	QuizQuestions []QuizQuestion `json:"quiz_questions"`
	Status        string         `json:"status" example:"success"`
}

// GenerationRunResponse summarizes one recorded pipeline run
type GenerationRunResponse struct {
	ID                 string    `json:"id"`
	QuizID             string    `json:"quiz_id"`
	Source             string    `json:"source" example:"text"`
	TranscriptChars    int       `json:"transcript_chars"`
	SentenceCount      int       `json:"sentence_count"`
	ImportantWordCount int       `json:"important_word_count"`
	ItemCount          int       `json:"item_count"`
	TrueFalseCount     int       `json:"true_false_count"`
	MCQCount           int       `json:"mcq_count"`
	DurationMS         int64     `json:"duration_ms"`
	CreatedAt          time.Time `json:"created_at"`
}

// GenerationRunsResponse lists recent runs, newest first
type GenerationRunsResponse struct {
	Runs []GenerationRunResponse `json:"runs"`
}

// HealthResponse reports dependency status
type HealthResponse struct {
	Status       string            `json:"status" example:"ok"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewQuizQuestion encodes options and answer as JSON text.
func NewQuizQuestion(item domain.QuizItem) (QuizQuestion, error) {
	options := item.Options
	if options == nil {
		options = []string{}
	}
	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return QuizQuestion{}, fmt.Errorf("encode options: %w", err)
	}
	answerJSON, err := json.Marshal(item.Answer)
	if err != nil {
		return QuizQuestion{}, fmt.Errorf("encode answer: %w", err)
	}
	return QuizQuestion{
		QuizID:           item.QuizID,
		Type:             string(item.Type),
		Question:         item.Question,
		Options:          string(optionsJSON),
		Answer:           string(answerJSON),
		Order:            item.Order,
		CorrectStatement: item.CorrectStatement,
	}, nil
}

// NewGenerateQuizResponse builds the wire response for a generated quiz.
func NewGenerateQuizResponse(quiz *domain.GeneratedQuiz) (*GenerateQuizResponse, error) {
	questions := make([]QuizQuestion, 0, len(quiz.Items))
	for _, item := range quiz.Items {
		q, err := NewQuizQuestion(item)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return &GenerateQuizResponse{
		Transcript:    quiz.Transcript,
		QuizID:        quiz.ID,
		QuizQuestions: questions,
		Status:        "success",
	}, nil
}

func NewGenerationRunResponse(run *domain.GenerationRun) GenerationRunResponse {
	return GenerationRunResponse{
		ID:                 run.ID,
		QuizID:             run.QuizID,
		Source:             string(run.Source),
		TranscriptChars:    run.TranscriptChars,
		SentenceCount:      run.SentenceCount,
		ImportantWordCount: run.ImportantWordCount,
		ItemCount:          run.ItemCount,
		TrueFalseCount:     run.TrueFalseCount,
		MCQCount:           run.MCQCount,
		DurationMS:         run.DurationMS,
		CreatedAt:          run.CreatedAt,
	}
}
