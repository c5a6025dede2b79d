package quizgen

import (
	"errors"
	"strings"

	"quiz-scribe/internal/domain"
)

var errMalformedSentence = errors.New("sentence has no words to replace")

var trueFalseOptions = []string{domain.AnswerTrue, domain.AnswerFalse}

// buildTrueFalse shows either the sentence itself or a copy with one word
// swapped for a pool word. Swapping may redraw the same word.
func buildTrueFalse(sentence string, pool []string, rng Random) (question, answer string) {
	if rng.IntN(2) == 0 {
		return sentence, domain.AnswerTrue
	}
	corrupted, err := corrupt(sentence, pool, rng)
	if err != nil {
		return sentence, domain.AnswerTrue
	}
	return corrupted, domain.AnswerFalse
}

func corrupt(sentence string, pool []string, rng Random) (string, error) {
	words := strings.Fields(sentence)
	if len(words) == 0 || len(pool) == 0 {
		return "", errMalformedSentence
	}
	idx := rng.IntN(len(words))
	words[idx] = pool[rng.IntN(len(pool))]
	return strings.Join(words, " "), nil
}
