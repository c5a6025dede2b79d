package quizgen

import (
	"go.uber.org/zap"

	"quiz-scribe/internal/domain"
)

// DefaultMaxItems caps the number of items produced per quiz.
const DefaultMaxItems = 50

// KeyTermExtractor returns the noun, verb and adjective tokens of one sentence.
type KeyTermExtractor interface {
	KeyTerms(sentence string) ([]string, error)
}

// Synthesizer turns sentences and an important-word pool into quiz items.
type Synthesizer struct {
	terms    KeyTermExtractor
	maxItems int
	logger   *zap.Logger
}

func NewSynthesizer(terms KeyTermExtractor, maxItems int, logger *zap.Logger) *Synthesizer {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{terms: terms, maxItems: maxItems, logger: logger}
}

// Synthesize consumes each sentence at most once, picking a question type
// uniformly per draw. Sentences an MCQ cannot use are dropped, not retried.
// pool is never modified.
func (s *Synthesizer) Synthesize(sentences, pool []string, quizID string, rng Random) []domain.QuizItem {
	items := make([]domain.QuizItem, 0, min(len(sentences), s.maxItems))

	remaining := make([]int, len(sentences))
	for i := range remaining {
		remaining[i] = i
	}

	for len(items) < s.maxItems && len(remaining) > 0 {
		wantMCQ := rng.IntN(2) == 1

		pick := rng.IntN(len(remaining))
		sentence := sentences[remaining[pick]]
		remaining[pick] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]

		item, ok := s.build(sentence, pool, wantMCQ, rng)
		if !ok {
			continue
		}
		item.QuizID = quizID
		item.Order = len(items) + 1
		item.CorrectStatement = sentence
		items = append(items, item)

		s.logger.Debug("Generated quiz item",
			zap.String("quiz_id", quizID),
			zap.Int("order", item.Order),
			zap.String("type", string(item.Type)))
	}
	return items
}

func (s *Synthesizer) build(sentence string, pool []string, wantMCQ bool, rng Random) (domain.QuizItem, bool) {
	if !wantMCQ {
		question, answer := buildTrueFalse(sentence, pool, rng)
		return domain.QuizItem{
			Type:     domain.QuestionTypeTrueFalse,
			Question: question,
			Options:  append([]string(nil), trueFalseOptions...),
			Answer:   answer,
		}, true
	}

	terms, err := s.terms.KeyTerms(sentence)
	if err != nil {
		s.logger.Warn("Key term extraction failed, skipping sentence",
			zap.String("sentence", sentence), zap.Error(err))
		return domain.QuizItem{}, false
	}
	question, options, answer, ok := buildMultipleChoice(sentence, terms, pool, rng)
	if !ok {
		return domain.QuizItem{}, false
	}
	return domain.QuizItem{
		Type:     domain.QuestionTypeMultipleChoice,
		Question: question,
		Options:  options,
		Answer:   answer,
	}, true
}
