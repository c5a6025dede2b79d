package nlp

import (
	"sync"
	"testing"

	"github.com/jdkato/prose/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProseAnalyzer_EndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the prose tagging model")
	}
	a, err := NewProseAnalyzer()
	require.NoError(t, err)

	result, err := a.Analyze(Normalize("The cat sat on the mat. [00:01] Dogs bark loudly at night."))
	require.NoError(t, err)

	require.Len(t, result.Sentences, 2)
	assert.Equal(t, "The cat sat on the mat.", result.Sentences[0])
	assert.Equal(t, "Dogs bark loudly at night.", result.Sentences[1])
	assert.Contains(t, result.ImportantWords, "cat")
	assert.Contains(t, result.ImportantWords, "mat")
	assert.NotContains(t, result.ImportantWords, "The")
	assert.NotContains(t, result.ImportantWords, ".")
}

func TestProseEngine_ReusesModel(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the prose tagging model")
	}
	e, err := NewProseEngine()
	require.NoError(t, err)
	require.NotNil(t, e.model)

	for _, opts := range [][]prose.DocOpt{
		{prose.WithSegmentation(false), prose.WithExtraction(false)},
		{prose.WithTokenization(false), prose.WithTagging(false), prose.WithExtraction(false)},
	} {
		doc, err := e.document("Dogs bark loudly at night.", opts...)
		require.NoError(t, err)
		assert.Same(t, e.model, doc.Model)
	}

	first, err := e.Tag("Dogs bark loudly at night.")
	require.NoError(t, err)
	second, err := e.Tag("Dogs bark loudly at night.")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProseEngine_ConcurrentTag(t *testing.T) {
	if testing.Short() {
		t.Skip("loads the prose tagging model")
	}
	e, err := NewProseEngine()
	require.NoError(t, err)

	want, err := e.Tag("The cat sat on the mat.")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.Tag("The cat sat on the mat.")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func BenchmarkProseEngine_Tag(b *testing.B) {
	e, err := NewProseEngine()
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Tag("Dogs bark loudly at night."); err != nil {
			b.Fatal(err)
		}
	}
}
