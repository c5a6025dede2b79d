package quizgen

import "strings"

const (
	blankPlaceholder = "________"
	mcqPrompt        = "What word completes this sentence: "
	maxDistractors   = 3
)

// keyTermsIn keeps the terms that occur verbatim in sentence, so the blank
// always lands on real text.
func keyTermsIn(sentence string, terms []string) []string {
	out := terms[:0:0]
	for _, term := range terms {
		if term != "" && strings.Contains(sentence, term) {
			out = append(out, term)
		}
	}
	return out
}

// buildMultipleChoice blanks one key term and mixes it with pool distractors.
// It returns ok=false when the sentence has no usable key term.
func buildMultipleChoice(sentence string, keyTerms, pool []string, rng Random) (question string, options []string, answer string, ok bool) {
	candidates := keyTermsIn(sentence, keyTerms)
	if len(candidates) == 0 {
		return "", nil, "", false
	}
	target := candidates[rng.IntN(len(candidates))]
	question = mcqPrompt + strings.Replace(sentence, target, blankPlaceholder, 1)

	options = append([]string{target}, sampleDistractors(pool, target, maxDistractors, rng)...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return question, options, target, true
}

// sampleDistractors draws pool positions without replacement and keeps up to k
// distinct words other than target. Frequent words are proportionally likelier.
func sampleDistractors(pool []string, target string, k int, rng Random) []string {
	positions := make([]int, 0, len(pool))
	for i, w := range pool {
		if w != target {
			positions = append(positions, i)
		}
	}

	seen := make(map[string]struct{}, k)
	out := make([]string, 0, k)
	for i := 0; i < len(positions) && len(out) < k; i++ {
		j := i + rng.IntN(len(positions)-i)
		positions[i], positions[j] = positions[j], positions[i]
		word := pool[positions[i]]
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}
