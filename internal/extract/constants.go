// Package extract locates the main article content in an HTML document.
// It scores block-level elements by tag semantics, text density, link density
// and class/id keyword hints, selects the best candidate subtree, merges
// qualifying siblings and strips boilerplate from the result.
package extract

import "regexp"

// Class/id patterns used by the scorer. Matching is case-insensitive and
// applied to the concatenated class and id attributes of an element.
var (
	// RegexpUnlikelyCandidates marks elements that are almost never article
	// content and are removed outright during the ruthless pass.
	RegexpUnlikelyCandidates = regexp.MustCompile(`(?i)combx|comment|community|disqus|extra|foot|header|menu|remark|rss|shoutbox|sidebar|sponsor|ad-break|agegate|pagination|pager|popup|tweet|twitter|adblock`)

	// RegexpMaybeCandidate overrides the unlikely pattern for elements that
	// could still hold content.
	RegexpMaybeCandidate = regexp.MustCompile(`(?i)and|article|body|column|main|shadow`)

	// RegexpPositive boosts the class weight of an element.
	RegexpPositive = regexp.MustCompile(`(?i)article|body|content|entry|hentry|main|page|pagination|post|text|blog|story`)

	// RegexpNegative lowers the class weight of an element.
	RegexpNegative = regexp.MustCompile(`(?i)combx|comment|com-|contact|foot|footer|footnote|masthead|media|meta|outbrain|promo|related|scroll|shoutbox|sidebar|sponsor|shopping|tags|tool|widget|adblock`)

	// RegexpSentenceEnd detects a period followed by a space or end of text,
	// used when deciding whether a short paragraph sibling is appendable.
	RegexpSentenceEnd = regexp.MustCompile(`\.( |$)`)
)

// divToPSelector lists block-ish elements whose presence keeps a <div> from
// being promoted to a paragraph.
const divToPSelector = "a, blockquote, dl, div, img, ol, p, pre, table, ul"

// dropSelector lists elements removed from the working document before
// scoring. Metadata is read from the original document, so nothing here is
// lost to the caller.
const dropSelector = "script, style, noscript, iframe, object, embed, input, select, textarea, button, form"

// ScoringConfig holds every heuristic constant used by the scorer and the
// extractor. The zero value is not usable; start from DefaultScoringConfig.
// Scores are deterministic for a given (HTML, keyword lists, config) triple.
type ScoringConfig struct {
	// TextLengthThreshold is the minimum visible text length for a paragraph
	// to contribute to its ancestors' scores.
	TextLengthThreshold int

	// RetryLength is the minimum length of the cleaned article HTML. A
	// shorter result triggers a second pass without unlikely-candidate
	// removal.
	RetryLength int

	// RegexWeight is added (or subtracted) when the built-in positive
	// (negative) class patterns match an element's class or id.
	RegexWeight float64

	// KeywordWeight is added (or subtracted) when a caller-supplied positive
	// (negative) keyword substring matches an element's class or id.
	KeywordWeight float64

	// CommaBonus is the per-comma score added to a scored paragraph.
	CommaBonus float64

	// LengthBonusDivisor and LengthBonusCap control the text-density term:
	// min(len/divisor, cap) is added to the paragraph score.
	LengthBonusDivisor float64
	LengthBonusCap     float64

	// GrandparentShare is the fraction of a paragraph's score propagated to
	// its grandparent. The parent receives the full score.
	GrandparentShare float64

	// LengthScaleDivisor scales candidate scores by raw text length:
	// score *= 1 + len/divisor.
	LengthScaleDivisor float64

	// SiblingScoreFraction and MinSiblingScore define the sibling-merge
	// threshold, max(MinSiblingScore, fraction*best). The threshold is
	// relative to the best candidate so it is invariant to document scale.
	SiblingScoreFraction float64
	MinSiblingScore      float64

	// HeaderLinkDensityMax removes headings with a higher link density
	// during sanitization.
	HeaderLinkDensityMax float64

	// TagWeights maps element names to their base score. Unlisted tags
	// start at zero.
	TagWeights map[string]float64
}

// DefaultScoringConfig returns the documented default heuristics.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		TextLengthThreshold:  25,
		RetryLength:          250,
		RegexWeight:          25,
		KeywordWeight:        25,
		CommaBonus:           1,
		LengthBonusDivisor:   100,
		LengthBonusCap:       3,
		GrandparentShare:     0.5,
		LengthScaleDivisor:   500,
		SiblingScoreFraction: 0.2,
		MinSiblingScore:      10,
		HeaderLinkDensityMax: 0.33,
		TagWeights: map[string]float64{
			"article": 8,
			"section": 8,
			"main":    8,
			"div":     5,
			"pre":     3,
			"td":      3,
			"blockquote": 3,
			"address": -3,
			"ol":      -3,
			"ul":      -3,
			"dl":      -3,
			"dd":      -3,
			"dt":      -3,
			"li":      -3,
			"form":    -3,
			"h1":      -5,
			"h2":      -5,
			"h3":      -5,
			"h4":      -5,
			"h5":      -5,
			"h6":      -5,
			"th":      -5,
			"nav":     -15,
			"header":  -15,
			"footer":  -15,
			"aside":   -15,
		},
	}
}

// tagWeight returns the base score for an element name.
func (c ScoringConfig) tagWeight(name string) float64 {
	return c.TagWeights[name]
}
