package quizgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// scriptedRandom replays fixed draws and leaves shuffles as identity.
type scriptedRandom struct {
	draws []int
}

func (s *scriptedRandom) IntN(n int) int {
	if len(s.draws) == 0 {
		panic("scriptedRandom: out of draws")
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v % n
}

func (s *scriptedRandom) Shuffle(int, func(i, j int)) {}

func seeded(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// lexiconTerms treats every lexicon word found in a sentence as a key term.
type lexiconTerms struct {
	lexicon map[string]bool
	err     error
}

func (l lexiconTerms) KeyTerms(sentence string) ([]string, error) {
	if l.err != nil {
		return nil, l.err
	}
	var out []string
	for _, w := range strings.Fields(sentence) {
		w = strings.Trim(w, ".,")
		if l.lexicon[strings.ToLower(w)] {
			out = append(out, w)
		}
	}
	return out, nil
}

func newLexicon(words ...string) lexiconTerms {
	l := lexiconTerms{lexicon: make(map[string]bool, len(words))}
	for _, w := range words {
		l.lexicon[w] = true
	}
	return l
}

// numberedSentences returns n distinct sentences that each contain "talks".
func numberedSentences(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Speaker %d talks about item %d.", i, i)
	}
	return out
}

var distractorPool = []string{"zebra", "quasar", "violin", "glacier", "zebra", "orbit", "lantern"}
