package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quiz-scribe/internal/domain"
)

func TestBuildTrueFalse_TrueBranch(t *testing.T) {
	rng := &scriptedRandom{draws: []int{0}}
	question, answer := buildTrueFalse("Dogs bark loudly at night.", distractorPool, rng)
	assert.Equal(t, "Dogs bark loudly at night.", question)
	assert.Equal(t, domain.AnswerTrue, answer)
}

func TestBuildTrueFalse_FalseBranchReplacesOneWord(t *testing.T) {
	// coin=false, word index 1 ("bark"), pool index 1 ("quasar")
	rng := &scriptedRandom{draws: []int{1, 1, 1}}
	question, answer := buildTrueFalse("Dogs bark loudly at night.", distractorPool, rng)
	assert.Equal(t, "Dogs quasar loudly at night.", question)
	assert.Equal(t, domain.AnswerFalse, answer)
}

func TestBuildTrueFalse_SameWordRedrawIsAccepted(t *testing.T) {
	pool := []string{"Dogs"}
	rng := &scriptedRandom{draws: []int{1, 0, 0}}
	question, answer := buildTrueFalse("Dogs bark.", pool, rng)
	assert.Equal(t, "Dogs bark.", question)
	assert.Equal(t, domain.AnswerFalse, answer)
}

func TestBuildTrueFalse_FallsBackWhenCorruptionImpossible(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		pool     []string
	}{
		{name: "no words", sentence: "   ", pool: distractorPool},
		{name: "empty pool", sentence: "Dogs bark.", pool: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRandom{draws: []int{1}}
			question, answer := buildTrueFalse(tt.sentence, tt.pool, rng)
			assert.Equal(t, tt.sentence, question)
			assert.Equal(t, domain.AnswerTrue, answer)
		})
	}
}

func TestCorrupt_DoesNotTouchPool(t *testing.T) {
	pool := append([]string(nil), distractorPool...)
	_, err := corrupt("one two three", pool, seeded(7))
	assert.NoError(t, err)
	assert.Equal(t, distractorPool, pool)
}

func TestCorrupt_CollapsesWhitespace(t *testing.T) {
	rng := &scriptedRandom{draws: []int{0, 0}}
	out, err := corrupt("  one\ttwo  three ", []string{"zero"}, rng)
	assert.NoError(t, err)
	assert.Equal(t, "zero two three", out)
}

func TestCorrupt_Malformed(t *testing.T) {
	_, err := corrupt("", distractorPool, seeded(1))
	assert.ErrorIs(t, err, errMalformedSentence)
}
