package nlp

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// ProseEngine segments and tags English text with prose's punkt segmenter and
// averaged perceptron tagger. The tagging model is loaded once and only read
// afterwards, so an engine is safe for concurrent use.
type ProseEngine struct {
	model *prose.Model
}

func NewProseEngine() (*ProseEngine, error) {
	doc, err := prose.NewDocument("",
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("load prose model: %w", err)
	}
	return &ProseEngine{model: doc.Model}, nil
}

func (e *ProseEngine) document(text string, opts ...prose.DocOpt) (*prose.Document, error) {
	return prose.NewDocument(text, append(opts, prose.UsingModel(e.model))...)
}

func (e *ProseEngine) Segment(text string) ([]string, error) {
	doc, err := e.document(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}
	sentences := make([]string, 0, len(doc.Sentences()))
	for _, s := range doc.Sentences() {
		sentences = append(sentences, s.Text)
	}
	return sentences, nil
}

func (e *ProseEngine) Tag(text string) ([]Token, error) {
	doc, err := e.document(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}
	tokens := make([]Token, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return tokens, nil
}
