package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// sanitize cleans the assembled article in place: suspicious headings go
// first, then tables, lists and divs are removed when their weight plus
// candidate score is negative or their tag counts look like boilerplate.
// This is a nested pass; it also runs inside the chosen candidate. All
// attributes are stripped at the end.
func sanitize(article *goquery.Document, candidates map[*html.Node]*candidate, sc *scorer) {
	cfg := sc.cfg
	root := article.Get(0)

	article.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, h *goquery.Selection) {
		if sc.classWeight(h) < 0 || linkDensity(h) > cfg.HeaderLinkDensityMax {
			h.Remove()
		}
	})

	// Reverse document order so inner elements are judged before their
	// containers.
	var blocks []*goquery.Selection
	article.Find("table, ul, div").Each(func(_ int, s *goquery.Selection) {
		blocks = append(blocks, s)
	})
	allowed := make(map[*html.Node]bool)
	for i := len(blocks) - 1; i >= 0; i-- {
		el := blocks[i]
		node := el.Get(0)
		if detached(node, root) || allowed[node] {
			continue
		}

		weight := sc.classWeight(el)
		score := 0.0
		if c, ok := candidates[node]; ok {
			score = c.score
		}

		if weight+score < 0 {
			el.Remove()
			continue
		}
		if strings.Count(el.Text(), ",") < 10 {
			cleanConditionally(el, node, weight, allowed, cfg)
		}
	}

	stripAttributes(root)
}

// cleanConditionally removes a block whose composition suggests boilerplate:
// link farms, image grids, input clusters, embeds, or near-empty wrappers.
// Blocks sandwiched between substantial siblings are kept, and their nested
// blocks are exempted from further cleaning.
func cleanConditionally(el *goquery.Selection, node *html.Node, weight float64, allowed map[*html.Node]bool, cfg ScoringConfig) {
	pCount := el.Find("p").Length()
	imgCount := el.Find("img").Length()
	liCount := el.Find("li").Length() - 100
	inputCount := el.Find("input").Length() - el.Find(`input[type="hidden"]`).Length()
	embedCount := el.Find("embed").Length()

	contentLen := textLength(el)
	density := linkDensity(el)
	name := goquery.NodeName(el)

	remove := false
	switch {
	case pCount > 0 && imgCount > pCount:
		remove = true
	case inputCount > pCount/3:
		remove = true
	case liCount > pCount && name != "ul" && name != "ol":
		remove = true
	case contentLen < cfg.TextLengthThreshold && (imgCount == 0 || imgCount > 2):
		remove = true
	case weight < cfg.RegexWeight && density > 0.2:
		remove = true
	case weight >= cfg.RegexWeight && density > 0.5:
		remove = true
	case embedCount == 1 && contentLen < 75, embedCount > 1:
		remove = true
	}

	if remove && surroundedByContent(node) {
		remove = false
		el.Find("table, ul, div").Each(func(_ int, inner *goquery.Selection) {
			allowed[inner.Get(0)] = true
		})
	}
	if remove {
		el.Remove()
	}
}

// surroundedByContent reports whether the nearest non-empty siblings on both
// sides carry over a thousand characters between them, a strong sign the
// block sits inside real article flow.
func surroundedByContent(node *html.Node) bool {
	prev := nearestSiblingLength(node, false)
	next := nearestSiblingLength(node, true)
	return prev+next > 1000
}

// nearestSiblingLength returns the text length of the closest sibling in the
// given direction that has any text.
func nearestSiblingLength(node *html.Node, forward bool) int {
	step := func(n *html.Node) *html.Node { return n.PrevSibling }
	if forward {
		step = func(n *html.Node) *html.Node { return n.NextSibling }
	}
	for n := step(node); n != nil; n = step(n) {
		if l := len(normalizeSpace(nodeText(n))); l > 0 {
			return l
		}
	}
	return 0
}
