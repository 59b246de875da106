package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Options configures a single extraction run.
type Options struct {
	// PositiveKeywords boost elements whose class or id contains any of them.
	PositiveKeywords []string
	// NegativeKeywords penalize matching elements and remove them during the
	// ruthless pass.
	NegativeKeywords []string
	// BaseURL, when set, absolutizes metadata URLs (canonical, image).
	BaseURL string
	// Scoring holds the heuristic constants. Zero value means defaults.
	Scoring *ScoringConfig
	// Logger receives per-stage debug events. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// Result is the outcome of a successful extraction. It is immutable; a new
// run produces a new Result.
type Result struct {
	// HTML is the cleaned article fragment with attributes stripped.
	HTML string
	// Paragraphs holds the normalized text of each remaining <p>, in
	// document order.
	Paragraphs []string
	// Title, CanonicalURL and ImageURL come from document-level markup and
	// are independent of scoring. Each may be empty when no markup matched.
	Title        string
	CanonicalURL string
	ImageURL     string
}

// Extract scores the document, selects the best content subtree, merges
// qualifying siblings and returns the sanitized fragment plus metadata.
// It returns ErrNoContent when the document has no usable article text.
func Extract(src string, opts Options) (*Result, error) {
	cfg := DefaultScoringConfig()
	if opts.Scoring != nil {
		cfg = *opts.Scoring
	}
	sc := newScorer(cfg, opts.PositiveKeywords, opts.NegativeKeywords)

	meta, err := documentMetadata(src, opts.BaseURL)
	if err != nil {
		return nil, err
	}

	// First pass removes unlikely candidates ruthlessly. If that strips too
	// much, the second pass keeps them and rescores.
	for _, ruthless := range []bool{true, false} {
		res, err := extractPass(src, sc, ruthless, opts.Logger)
		if err != nil {
			return nil, err
		}
		if res == nil {
			continue
		}
		if ruthless && len(res.HTML) < cfg.RetryLength {
			opts.Logger.Debug().Int("length", len(res.HTML)).Msg("article too short, retrying without unlikely removal")
			continue
		}
		res.Title = meta.title
		res.CanonicalURL = meta.canonicalURL
		res.ImageURL = meta.imageURL
		return res, nil
	}
	return nil, ErrNoContent
}

// extractPass runs one scoring iteration over a fresh parse of the source.
// It returns (nil, nil) when the pass found no candidate and a retry makes
// sense.
func extractPass(src string, sc *scorer, ruthless bool, logger zerolog.Logger) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, wrapParse(err)
	}

	doc.Find(dropSelector).Remove()

	scope := narrowScope(doc)
	if ruthless {
		removeUnlikely(scope, sc.negative)
	}
	promoteDivs(scope)

	candidates := sc.scoreParagraphs(scope)
	logger.Debug().Bool("ruthless", ruthless).Int("candidates", len(candidates)).Msg("scored paragraphs")

	best := bestCandidate(candidates)
	var article *goquery.Document
	switch {
	case best != nil:
		article = buildArticle(best, candidates, sc.cfg)
	case ruthless:
		// Too much was removed; retry keeping unlikely candidates.
		return nil, nil
	default:
		// Second pass found nothing either: fall back to the scope as-is.
		article = wrapSelection(scope)
	}

	sanitize(article, candidates, sc)

	paragraphs := article.Find("p").Map(func(_ int, p *goquery.Selection) string {
		return innerText(p)
	})
	if innerText(article.Selection) == "" {
		if ruthless {
			return nil, nil
		}
		return nil, ErrNoContent
	}

	rendered, err := renderNode(article.Get(0))
	if err != nil {
		return nil, wrapRender(err)
	}
	return &Result{HTML: rendered, Paragraphs: paragraphs}, nil
}

// narrowScope focuses extraction on the most article-like container:
// [itemprop=articleBody], then <article>, then <body>.
func narrowScope(doc *goquery.Document) *goquery.Selection {
	for _, sel := range []string{"[itemprop=articleBody]", "article", "body"} {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}
	return doc.Selection
}

// removeUnlikely drops subtrees whose class/id matches the unlikely pattern
// without a maybe-candidate override, plus any element matching a caller
// negative keyword. html and body are never removed.
func removeUnlikely(scope *goquery.Selection, negative []string) {
	scope.Find("*").Each(func(_ int, s *goquery.Selection) {
		ms := matchString(s)
		if len(strings.TrimSpace(ms)) < 2 {
			return
		}
		name := goquery.NodeName(s)
		if name == "html" || name == "body" {
			return
		}
		if matches(ms, negative) {
			s.Remove()
			return
		}
		if RegexpUnlikelyCandidates.MatchString(ms) && !RegexpMaybeCandidate.MatchString(ms) {
			s.Remove()
		}
	})
}

// promoteDivs converts <div> elements without block-level children into
// paragraphs so they take part in scoring.
func promoteDivs(scope *goquery.Selection) {
	scope.Find("div").Each(func(_ int, div *goquery.Selection) {
		if div.Find(divToPSelector).Length() > 0 {
			return
		}
		node := div.Get(0)
		node.Data = "p"
		node.DataAtom = atom.P
	})
}

// buildArticle assembles the extraction root: the best candidate plus any
// adjacent siblings scoring above max(MinSiblingScore, fraction*best), in
// document order. Short paragraph siblings that read like prose are kept
// even without a score.
func buildArticle(best *candidate, candidates map[*html.Node]*candidate, cfg ScoringConfig) *goquery.Document {
	threshold := best.score * cfg.SiblingScoreFraction
	if threshold < cfg.MinSiblingScore {
		threshold = cfg.MinSiblingScore
	}

	articleNode := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

	parent := best.sel.Parent()
	if parent.Length() == 0 {
		detach(best.node)
		articleNode.AppendChild(best.node)
		return goquery.NewDocumentFromNode(articleNode)
	}

	var keep []*html.Node
	parent.Children().Each(func(_ int, sibling *goquery.Selection) {
		node := sibling.Get(0)
		if node == best.node || appendable(sibling, node, candidates, threshold) {
			keep = append(keep, node)
		}
	})
	for _, node := range keep {
		detach(node)
		articleNode.AppendChild(node)
	}
	return goquery.NewDocumentFromNode(articleNode)
}

// appendable decides whether a sibling of the best candidate belongs to the
// article: either its own score clears the threshold, or it is a paragraph
// with enough prose and few links.
func appendable(sibling *goquery.Selection, node *html.Node, candidates map[*html.Node]*candidate, threshold float64) bool {
	if c, ok := candidates[node]; ok && c.score >= threshold {
		return true
	}
	if goquery.NodeName(sibling) != "p" {
		return false
	}
	density := linkDensity(sibling)
	text := innerText(sibling)
	if len(text) > 80 && density < 0.25 {
		return true
	}
	return len(text) <= 80 && density == 0 && RegexpSentenceEnd.MatchString(text)
}

// wrapSelection moves the children of a selection under a fresh <div> root,
// used when no candidate was found and the scope is taken as-is.
func wrapSelection(scope *goquery.Selection) *goquery.Document {
	articleNode := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	for _, node := range scope.Nodes {
		for child := node.FirstChild; child != nil; {
			next := child.NextSibling
			detach(child)
			articleNode.AppendChild(child)
			child = next
		}
	}
	return goquery.NewDocumentFromNode(articleNode)
}

// detach removes a node from its current parent, if any.
func detach(node *html.Node) {
	if node.Parent != nil {
		node.Parent.RemoveChild(node)
	}
}
