package insight

import (
	"regexp"
	"strings"
)

// Fixed sentiment lexicon. Unmatched words contribute 0; scores are raw
// sums with no normalization by text length.
var lexicon = map[string]int{
	"calm":     2,
	"grateful": 3,
	"peace":    2,
	"joy":      3,
	"flow":     2,
	"tired":    -1,
	"stressed": -2,
	"anxious":  -3,
	"angry":    -3,
	"stuck":    -2,
}

var wordSplit = regexp.MustCompile(`\W+`)

// ScoreSentiment lower-cases the text, splits on non-word-character runs,
// and sums the lexicon weights of the resulting words.
func ScoreSentiment(text string) int {
	score := 0
	for _, word := range wordSplit.Split(strings.ToLower(text), -1) {
		score += lexicon[word]
	}
	return score
}
