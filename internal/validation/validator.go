package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"quiz-scribe/internal/domain"
	"quiz-scribe/internal/dto"
)

const (
	DefaultRunsLimit = 20
	MaxRunsLimit     = 100
)

// Validator provides request validation functionality
type Validator struct {
	maxTranscriptChars int
}

// NewValidator creates a validator. maxTranscriptChars <= 0 disables the length check.
func NewValidator(maxTranscriptChars int) *Validator {
	return &Validator{maxTranscriptChars: maxTranscriptChars}
}

// ValidateGenerateQuizRequest checks the quiz ID format and transcript length.
// A blank transcript is left for the pipeline to reject.
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if v.maxTranscriptChars > 0 {
		if n := utf8.RuneCountInString(req.Transcript); n > v.maxTranscriptChars {
			errors = append(errors, domain.NewOutOfRangeError("transcript", n, 0, v.maxTranscriptChars))
		}
	}

	if errs := v.ValidateQuizID(req.QuizID); len(errs) > 0 {
		errors = append(errors, errs...)
	}

	return errors
}

// ValidateQuizID accepts an empty ID or a UUID.
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	if strings.TrimSpace(quizID) == "" {
		return nil
	}
	if _, err := uuid.Parse(quizID); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("quiz_id", quizID)}
	}
	return nil
}

// ValidateUpload checks the multipart video part.
func (v *Validator) ValidateUpload(filename string, size int64) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(filename) == "" {
		errors = append(errors, domain.NewMissingFieldError("video"))
	} else if size <= 0 {
		errors = append(errors, domain.ValidationError{
			Code:    domain.CodeInvalidInput,
			Field:   "video",
			Message: "Uploaded file is empty",
		})
	}
	return errors
}

// ParseRunsLimit parses the limit query parameter, defaulting when empty.
func (v *Validator) ParseRunsLimit(raw string) (int, domain.ValidationErrors) {
	if raw == "" {
		return DefaultRunsLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("limit", raw)}
	}
	if limit < 1 || limit > MaxRunsLimit {
		return 0, domain.ValidationErrors{domain.NewOutOfRangeError("limit", limit, 1, MaxRunsLimit)}
	}
	return limit, nil
}
