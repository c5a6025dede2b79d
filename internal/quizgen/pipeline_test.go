package quizgen

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-scribe/internal/config"
	"quiz-scribe/internal/domain"
	"quiz-scribe/internal/nlp"
)

// stubEngine splits on ". " and tags every lexicon word as a noun.
type stubEngine struct {
	lexicon map[string]bool
}

func (s stubEngine) Segment(text string) ([]string, error) {
	return strings.SplitAfter(text, ". "), nil
}

func (s stubEngine) Tag(text string) ([]nlp.Token, error) {
	var tokens []nlp.Token
	for _, w := range strings.Fields(text) {
		w = strings.Trim(w, ".")
		tag := "DT"
		if s.lexicon[strings.ToLower(w)] {
			tag = "NN"
		}
		tokens = append(tokens, nlp.Token{Text: w, Tag: tag})
	}
	return tokens, nil
}

func newTestPipeline(seed uint64) *Pipeline {
	engine := stubEngine{lexicon: map[string]bool{
		"cat": true, "sat": true, "mat": true, "dogs": true, "bark": true, "night": true,
	}}
	analyzer := nlp.NewAnalyzer(engine, engine)
	return NewPipeline(analyzer, config.GenerationConfig{MaxItems: 50, Seed: seed}, nil)
}

func TestPipeline_Run_EndToEnd(t *testing.T) {
	p := newTestPipeline(11)

	quiz, err := p.Run(context.Background(), Input{
		Transcript: "The cat sat on the mat. [00:01] Dogs bark loudly at night.",
	})
	require.NoError(t, err)

	_, err = uuid.Parse(quiz.ID)
	assert.NoError(t, err)
	assert.Equal(t, "The cat sat on the mat. Dogs bark loudly at night.", quiz.NormalizedText)
	assert.Equal(t, "The cat sat on the mat.\n\nDogs bark loudly at night.", quiz.Transcript)
	assert.Equal(t, 2, quiz.SentenceCount)
	assert.Equal(t, 6, quiz.ImportantWordCount)

	sentences := []string{"The cat sat on the mat.", "Dogs bark loudly at night."}
	require.Len(t, quiz.Items, 2)
	assertQuizInvariants(t, quiz.Items, sentences, quiz.ID)
}

func TestPipeline_Run_KeepsProvidedQuizID(t *testing.T) {
	p := newTestPipeline(3)
	id := uuid.NewString()

	quiz, err := p.Run(context.Background(), Input{Transcript: "The cat sat.", QuizID: id})
	require.NoError(t, err)
	assert.Equal(t, id, quiz.ID)
	for _, item := range quiz.Items {
		assert.Equal(t, id, item.QuizID)
	}
}

func TestPipeline_Run_EmptyTranscript(t *testing.T) {
	p := newTestPipeline(1)

	for _, raw := range []string{"", "   \n", "[00:01] [00:02.5 --> 00:03.0]"} {
		quiz, err := p.Run(context.Background(), Input{Transcript: raw})
		assert.Nil(t, quiz)
		assert.True(t, domain.IsCode(err, domain.CodeEmptyTranscript), "input %q", raw)
	}
}

func TestPipeline_Run_NoMaterial(t *testing.T) {
	engine := stubEngine{}
	segmenter := emptySegmenter{}
	p := NewPipeline(nlp.NewAnalyzer(segmenter, engine), config.GenerationConfig{}, nil)

	quiz, err := p.Run(context.Background(), Input{Transcript: "words without sentences"})
	require.NoError(t, err)
	assert.Empty(t, quiz.Items)
	assert.Equal(t, 0, quiz.SentenceCount)

	quiz, err = p.Run(context.Background(), Input{Transcript: "words without sentences", RequireItems: true})
	assert.Nil(t, quiz)
	assert.True(t, domain.IsCode(err, domain.CodeNoMaterial))
}

func TestPipeline_Run_FixedSeedIsReproducible(t *testing.T) {
	p := newTestPipeline(1234)
	in := Input{Transcript: "The cat sat on the mat. Dogs bark loudly at night.", QuizID: "fixed"}

	a, err := p.Run(context.Background(), in)
	require.NoError(t, err)
	b, err := p.Run(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, a.Items, b.Items)
}

func TestPipeline_Run_RandomFactoryOverride(t *testing.T) {
	engine := stubEngine{lexicon: map[string]bool{"cat": true}}
	analyzer := nlp.NewAnalyzer(engine, engine)
	p := NewPipeline(analyzer, config.GenerationConfig{}, nil, WithRandomFactory(func() Random {
		// true-false, first sentence, true coin
		return &scriptedRandom{draws: []int{0, 0, 0}}
	}))

	quiz, err := p.Run(context.Background(), Input{Transcript: "The cat sat."})
	require.NoError(t, err)
	require.Len(t, quiz.Items, 1)
	assert.Equal(t, domain.QuestionTypeTrueFalse, quiz.Items[0].Type)
	assert.Equal(t, "The cat sat.", quiz.Items[0].Question)
	assert.Equal(t, domain.AnswerTrue, quiz.Items[0].Answer)
}

type emptySegmenter struct{}

func (emptySegmenter) Segment(string) ([]string, error) { return nil, nil }

func TestPipeline_Run_NoMaterialWhenEveryDrawIsSkipped(t *testing.T) {
	engine := stubEngine{}
	p := NewPipeline(nlp.NewAnalyzer(engine, engine), config.GenerationConfig{}, nil, WithRandomFactory(func() Random {
		// mcq on each sentence; neither has a key term
		return &scriptedRandom{draws: []int{1, 0, 1, 0}}
	}))

	quiz, err := p.Run(context.Background(), Input{Transcript: "Alpha beta. Gamma delta.", QuizID: "q-skip", RequireItems: true})
	assert.Nil(t, quiz)
	de, ok := domain.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeNoMaterial, de.Code)
	assert.Equal(t, "No quiz items could be built from the transcript", de.Message)
	assert.Equal(t, "q-skip", de.Context["quiz_id"])
}

func TestPipeline_Run_Concurrent(t *testing.T) {
	p := newTestPipeline(0)
	sentences := []string{"The cat sat on the mat.", "Dogs bark loudly at night."}

	const runs = 8
	quizzes := make([]*domain.GeneratedQuiz, runs)
	errs := make([]error, runs)

	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			quizzes[i], errs[i] = p.Run(context.Background(), Input{
				Transcript: "The cat sat on the mat. [00:01] Dogs bark loudly at night.",
				QuizID:     fmt.Sprintf("run-%d", i),
			})
		}()
	}
	wg.Wait()

	for i := 0; i < runs; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, fmt.Sprintf("run-%d", i), quizzes[i].ID)
		assert.NotEmpty(t, quizzes[i].Items)
		assertQuizInvariants(t, quizzes[i].Items, sentences, quizzes[i].ID)
	}
}
