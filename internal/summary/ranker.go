package summary

import (
	"math"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
)

// Options configures the sentence ranker. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// MaxSentences is the upper bound on returned sentences. Fewer come back
	// when the document is shorter.
	MaxSentences int
	// Language is the two-letter code used for stopword filtering. Unknown
	// or unsupported codes fall back to English.
	Language string
	// LeadBoost and LeadDecay shape the positional bonus: sentence i is
	// scaled by 1 + LeadBoost*exp(-LeadDecay*i). Lead paragraphs are
	// disproportionately representative of the article.
	LeadBoost float64
	LeadDecay float64
}

// DefaultOptions returns the documented ranker defaults.
func DefaultOptions() Options {
	return Options{
		MaxSentences: 5,
		Language:     "en",
		LeadBoost:    0.5,
		LeadDecay:    0.1,
	}
}

// Rank selects the MaxSentences highest-salience sentences and returns them
// in original document order. Salience is the mean global frequency of a
// sentence's significant words, so long sentences get no length advantage.
// Ties go to the earlier sentence. An empty input yields an empty result,
// not an error.
func Rank(sents []string, opts Options) []string {
	if len(sents) == 0 || opts.MaxSentences <= 0 {
		return nil
	}
	if len(sents) <= opts.MaxSentences {
		out := make([]string, len(sents))
		copy(out, sents)
		return out
	}

	tokens := make([][]string, len(sents))
	freq := make(map[string]int)
	for i, s := range sents {
		tokens[i] = scoringTokens(s, opts.Language)
		for _, w := range tokens[i] {
			freq[w]++
		}
	}

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(sents))
	for i := range sents {
		sum := 0.0
		for _, w := range tokens[i] {
			sum += float64(freq[w])
		}
		mean := 0.0
		if len(tokens[i]) > 0 {
			mean = sum / float64(len(tokens[i]))
		}
		mean *= 1 + opts.LeadBoost*math.Exp(-opts.LeadDecay*float64(i))
		ranked[i] = scored{index: i, score: mean}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].score != ranked[b].score {
			return ranked[a].score > ranked[b].score
		}
		return ranked[a].index < ranked[b].index
	})

	top := ranked[:opts.MaxSentences]
	sort.Slice(top, func(a, b int) bool { return top[a].index < top[b].index })

	out := make([]string, 0, len(top))
	for _, s := range top {
		out = append(out, sents[s.index])
	}
	return out
}

// Summarize joins the ranked sentences into the description text.
func Summarize(sents []string, opts Options) string {
	return strings.Join(Rank(sents, opts), " ")
}

// scoringTokens segments a sentence into words, lowercased and with
// stopwords dropped. The result is used only for scoring; the original
// sentence text is what ends up in the summary.
func scoringTokens(sentence, language string) []string {
	if language == "" || language == "unknown" {
		language = "en"
	}
	var out []string
	for _, w := range Words(strings.ToLower(sentence)) {
		if strings.TrimSpace(stopwords.CleanString(w, language, false)) == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}
