package extract

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// candidate is a block element with its accumulated content score.
// Candidates mirror the DOM; only ancestors of scored paragraphs appear.
type candidate struct {
	node  *html.Node
	sel   *goquery.Selection
	score float64
}

// scorer assigns content-likelihood scores to block-level elements.
// It is read-only after construction and safe to share between runs.
type scorer struct {
	cfg      ScoringConfig
	positive []string
	negative []string
}

func newScorer(cfg ScoringConfig, positive, negative []string) *scorer {
	return &scorer{cfg: cfg, positive: positive, negative: negative}
}

// classWeight rates an element by its class and id attributes: built-in
// positive/negative patterns and caller keywords each add or remove a fixed
// weight. Keywords are also checked against "tag-<name>", so a keyword like
// "tag-aside" can target a tag rather than a class.
func (s *scorer) classWeight(sel *goquery.Selection) float64 {
	weight := 0.0
	for _, attr := range []string{sel.AttrOr("class", ""), sel.AttrOr("id", "")} {
		if attr == "" {
			continue
		}
		if RegexpNegative.MatchString(attr) {
			weight -= s.cfg.RegexWeight
		}
		if RegexpPositive.MatchString(attr) {
			weight += s.cfg.RegexWeight
		}
		weight += s.keywordWeight(attr)
	}
	weight += s.keywordWeight("tag-" + goquery.NodeName(sel))
	return weight
}

func (s *scorer) keywordWeight(attr string) float64 {
	weight := 0.0
	if matches(attr, s.positive) {
		weight += s.cfg.KeywordWeight
	}
	if matches(attr, s.negative) {
		weight -= s.cfg.KeywordWeight
	}
	return weight
}

// initialScore is the starting score of a new candidate: tag weight plus
// class weight.
func (s *scorer) initialScore(sel *goquery.Selection) float64 {
	return s.cfg.tagWeight(goquery.NodeName(sel)) + s.classWeight(sel)
}

// scoreParagraphs walks every paragraph-like element under scope and
// propagates its content score to the parent and, at GrandparentShare, to
// the grandparent. Final candidate scores are scaled down by link density
// and up by raw text length.
func (s *scorer) scoreParagraphs(scope *goquery.Selection) map[*html.Node]*candidate {
	candidates := make(map[*html.Node]*candidate)
	var ordered []*candidate

	ensure := func(sel *goquery.Selection) *candidate {
		node := sel.Get(0)
		if c, ok := candidates[node]; ok {
			return c
		}
		c := &candidate{node: node, sel: sel, score: s.initialScore(sel)}
		candidates[node] = c
		ordered = append(ordered, c)
		return c
	}

	scope.Find("p, pre, td").Each(func(_ int, para *goquery.Selection) {
		parent := para.Parent()
		if parent.Length() == 0 {
			return
		}

		text := innerText(para)
		if len(text) < s.cfg.TextLengthThreshold {
			return
		}

		contentScore := 1.0
		contentScore += float64(strings.Count(text, ",")) * s.cfg.CommaBonus
		contentScore += math.Min(float64(len(text))/s.cfg.LengthBonusDivisor, s.cfg.LengthBonusCap)

		ensure(parent).score += contentScore
		if grand := parent.Parent(); grand.Length() > 0 {
			ensure(grand).score += contentScore * s.cfg.GrandparentShare
		}
	})

	// Good content has low link density and plenty of raw text.
	for _, c := range ordered {
		c.score *= 1 - linkDensity(c.sel)
		c.score *= 1 + float64(textLength(c.sel))/s.cfg.LengthScaleDivisor
	}

	return candidates
}

// bestCandidate returns the highest-scoring candidate, or nil when the map
// is empty. Ties are broken deterministically by document order.
func bestCandidate(candidates map[*html.Node]*candidate) *candidate {
	var best *candidate
	for _, c := range candidates {
		if best == nil || c.score > best.score {
			best = c
			continue
		}
		if c.score == best.score && documentOrderBefore(c.node, best.node) {
			best = c
		}
	}
	return best
}

// documentOrderBefore reports whether a precedes b in a pre-order walk of
// their shared tree. Nodes in unrelated trees compare false.
func documentOrderBefore(a, b *html.Node) bool {
	root := a
	for root.Parent != nil {
		root = root.Parent
	}
	found := false
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n == a {
			found = true
			return true
		}
		if n == b {
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)
	return found
}
