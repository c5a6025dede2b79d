package nlp

import (
	"fmt"
	"strings"
)

// Token is a word with its Penn Treebank part-of-speech tag.
type Token struct {
	Text string
	Tag  string
}

// Segmenter splits text into sentences.
type Segmenter interface {
	Segment(text string) ([]string, error)
}

// Tagger tokenizes text and tags every token.
type Tagger interface {
	Tag(text string) ([]Token, error)
}

// importantTagPrefixes selects nouns, verbs and adjectives.
var importantTagPrefixes = []string{"NN", "VB", "JJ"}

// IsImportantTag reports whether tag marks a noun, verb or adjective.
func IsImportantTag(tag string) bool {
	for _, prefix := range importantTagPrefixes {
		if strings.HasPrefix(tag, prefix) {
			return true
		}
	}
	return false
}

// Analysis is the result of analyzing a normalized transcript.
type Analysis struct {
	Sentences []string
	// ImportantWords keeps tokenization order and duplicates.
	ImportantWords []string
}

// Analyzer segments and tags normalized transcript text.
type Analyzer struct {
	segmenter Segmenter
	tagger    Tagger
}

func NewAnalyzer(segmenter Segmenter, tagger Tagger) *Analyzer {
	return &Analyzer{segmenter: segmenter, tagger: tagger}
}

// NewProseAnalyzer returns an Analyzer backed by the prose NLP engine.
func NewProseAnalyzer() (*Analyzer, error) {
	engine, err := NewProseEngine()
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(engine, engine), nil
}

// Analyze splits clean text into sentences and builds the document-wide
// important-word pool. The pool is built from the whole text, not per sentence.
func (a *Analyzer) Analyze(clean string) (*Analysis, error) {
	result := &Analysis{Sentences: []string{}, ImportantWords: []string{}}
	if strings.TrimSpace(clean) == "" {
		return result, nil
	}

	rawSentences, err := a.segmenter.Segment(clean)
	if err != nil {
		return nil, fmt.Errorf("sentence segmentation failed: %w", err)
	}
	for _, s := range rawSentences {
		s = Normalize(s)
		if s != "" {
			result.Sentences = append(result.Sentences, s)
		}
	}

	words, err := a.ImportantWords(clean)
	if err != nil {
		return nil, err
	}
	result.ImportantWords = words
	return result, nil
}

// ImportantWords returns the noun, verb and adjective tokens of text in order.
func (a *Analyzer) ImportantWords(text string) ([]string, error) {
	tokens, err := a.tagger.Tag(text)
	if err != nil {
		return nil, fmt.Errorf("part-of-speech tagging failed: %w", err)
	}
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if IsImportantTag(tok.Tag) {
			words = append(words, tok.Text)
		}
	}
	return words, nil
}

// KeyTerms tags a single sentence and returns its noun, verb and adjective tokens.
func (a *Analyzer) KeyTerms(sentence string) ([]string, error) {
	return a.ImportantWords(sentence)
}
