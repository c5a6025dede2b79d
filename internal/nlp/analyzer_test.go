package nlp

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEngine splits on ". " and tags words from a fixed lexicon.
type stubEngine struct {
	tags       map[string]string
	segmentErr error
	tagErr     error
}

func (s *stubEngine) Segment(text string) ([]string, error) {
	if s.segmentErr != nil {
		return nil, s.segmentErr
	}
	return strings.SplitAfter(text, ". "), nil
}

func (s *stubEngine) Tag(text string) ([]Token, error) {
	if s.tagErr != nil {
		return nil, s.tagErr
	}
	var tokens []Token
	for _, w := range strings.Fields(text) {
		w = strings.Trim(w, ".,")
		tag, ok := s.tags[strings.ToLower(w)]
		if !ok {
			tag = "DT"
		}
		tokens = append(tokens, Token{Text: w, Tag: tag})
	}
	return tokens, nil
}

func newStubEngine() *stubEngine {
	return &stubEngine{tags: map[string]string{
		"cat":    "NN",
		"sat":    "VBD",
		"mat":    "NN",
		"dogs":   "NNS",
		"bark":   "VBP",
		"loudly": "RB",
		"night":  "NN",
		"big":    "JJ",
	}}
}

func TestIsImportantTag(t *testing.T) {
	for _, tag := range []string{"NN", "NNS", "NNP", "NNPS", "VB", "VBD", "VBG", "VBN", "VBP", "VBZ", "JJ", "JJR", "JJS"} {
		assert.True(t, IsImportantTag(tag), tag)
	}
	for _, tag := range []string{"DT", "IN", "RB", "PRP", ".", ""} {
		assert.False(t, IsImportantTag(tag), tag)
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	engine := newStubEngine()
	a := NewAnalyzer(engine, engine)

	result, err := a.Analyze("The cat sat on the mat. Dogs bark loudly at night.")
	require.NoError(t, err)

	assert.Equal(t, []string{"The cat sat on the mat.", "Dogs bark loudly at night."}, result.Sentences)
	assert.Equal(t, []string{"cat", "sat", "mat", "Dogs", "bark", "night"}, result.ImportantWords)
}

func TestAnalyzer_Analyze_KeepsDuplicates(t *testing.T) {
	engine := newStubEngine()
	a := NewAnalyzer(engine, engine)

	result, err := a.Analyze("The cat sat. The big cat sat.")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "sat", "big", "cat", "sat"}, result.ImportantWords)
}

func TestAnalyzer_Analyze_EmptyInput(t *testing.T) {
	engine := newStubEngine()
	a := NewAnalyzer(engine, engine)

	result, err := a.Analyze("   ")
	require.NoError(t, err)
	assert.Empty(t, result.Sentences)
	assert.Empty(t, result.ImportantWords)
}

func TestAnalyzer_Analyze_DropsBlankSentences(t *testing.T) {
	tagger := &stubEngine{tags: map[string]string{}}
	segmenter := &fixedSegmenter{sentences: []string{" [00:01] ", "Real sentence [00:02].", ""}}
	a := NewAnalyzer(segmenter, tagger)

	result, err := a.Analyze("Real sentence.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Real sentence ."}, result.Sentences)
}

func TestAnalyzer_Analyze_Errors(t *testing.T) {
	t.Run("segmenter", func(t *testing.T) {
		engine := newStubEngine()
		engine.segmentErr = errors.New("boom")
		_, err := NewAnalyzer(engine, engine).Analyze("Some text.")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "segmentation")
	})
	t.Run("tagger", func(t *testing.T) {
		engine := newStubEngine()
		engine.tagErr = errors.New("boom")
		_, err := NewAnalyzer(engine, engine).Analyze("Some text.")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tagging")
	})
}

func TestAnalyzer_KeyTerms(t *testing.T) {
	engine := newStubEngine()
	a := NewAnalyzer(engine, engine)

	terms, err := a.KeyTerms("Dogs bark loudly at night.")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dogs", "bark", "night"}, terms)

	terms, err = a.KeyTerms("on the at")
	require.NoError(t, err)
	assert.Empty(t, terms)
}

type fixedSegmenter struct {
	sentences []string
}

func (f *fixedSegmenter) Segment(string) ([]string, error) {
	return f.sentences, nil
}
