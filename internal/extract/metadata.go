package extract

import (
	"net/url"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// logoStubs are path fragments of share/logo placeholder images that do not
// represent the article's lead image.
var logoStubs = []string{"logo", "fb", "og", "default", "share", "facebook", "social"}

// imageExtensions are the file extensions accepted for a lead image.
var imageExtensions = map[string]bool{"jpg": true, "jpeg": true, "gif": true, "png": true}

// titleEntities maps dash, space and quote variants to plain ASCII so glyph
// differences between the page title and its headings do not defeat the
// common-sequence comparison.
var titleEntities = strings.NewReplacer(
	"—", "-",
	"–", "-",
	"&mdash;", "-",
	"&ndash;", "-",
	"\u00a0", " ",
	"«", `"`,
	"»", `"`,
	"&quot;", `"`,
)

// normalizeTitle collapses whitespace and entity variants in a title
// candidate.
func normalizeTitle(s string) string {
	return normalizeSpace(titleEntities.Replace(s))
}

// metadata holds document-level fields read from structured markup. They are
// independent of content scoring and extracted from the original document,
// in a fixed precedence: schema.org itemprop first, then Open Graph, then
// plain tags.
type metadata struct {
	title        string
	canonicalURL string
	imageURL     string
}

// documentMetadata parses the source once and resolves title, canonical URL
// and image URL. Missing markup yields empty fields, never an error.
func documentMetadata(src, baseURL string) (*metadata, error) {
	doc, err := htmlquery.Parse(strings.NewReader(src))
	if err != nil {
		return nil, wrapParse(err)
	}
	return &metadata{
		title:        documentTitle(doc),
		canonicalURL: canonicalURL(doc, baseURL),
		imageURL:     imageURL(doc, baseURL),
	}, nil
}

// documentTitle picks the article headline. schema.org headline and name
// win outright; otherwise the og:title or <title> candidate is refined
// against h1-h3 headings by longest common word sequence, which trims site
// names and separators from page titles.
func documentTitle(doc *html.Node) string {
	for _, expr := range []string{"//*[@itemprop='headline']", "//*[@itemprop='name']"} {
		if n := htmlquery.FindOne(doc, expr); n != nil {
			if t := normalizeSpace(htmlquery.InnerText(n)); t != "" {
				return t
			}
		}
	}

	var candidates []string
	if n := htmlquery.FindOne(doc, "//meta[@property='og:title' or @name='og:title']"); n != nil {
		if t := normalizeTitle(htmlquery.SelectAttr(n, "content")); t != "" {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		if n := htmlquery.FindOne(doc, "//title"); n != nil {
			if t := normalizeTitle(htmlquery.InnerText(n)); t != "" {
				candidates = append(candidates, t)
			}
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	for _, h := range htmlquery.Find(doc, "//h1 | //h2 | //h3") {
		if t := normalizeTitle(htmlquery.InnerText(h)); t != "" {
			candidates = append(candidates, t)
		}
	}

	// The longest word sequence shared by the page title and a heading is
	// usually the headline without the site name.
	longest := ""
	for _, heading := range candidates[1:] {
		if common := longestCommonSentence(candidates[0], heading); len(common) > len(longest) {
			longest = common
		}
	}
	if longest != "" {
		return longest
	}
	return candidates[0]
}

// canonicalURL resolves the author-declared canonical link, falling back to
// og:url and finally the source URL.
func canonicalURL(doc *html.Node, baseURL string) string {
	if n := htmlquery.FindOne(doc, "//link[@rel='canonical']"); n != nil {
		if href := strings.TrimSpace(htmlquery.SelectAttr(n, "href")); href != "" {
			return absoluteURL(href, baseURL)
		}
	}
	if n := htmlquery.FindOne(doc, "//meta[@property='og:url' or @name='og:url']"); n != nil {
		if href := strings.TrimSpace(htmlquery.SelectAttr(n, "content")); href != "" {
			return absoluteURL(href, baseURL)
		}
	}
	return baseURL
}

// imageURL finds the lead image from schema.org or Open Graph markup and
// validates it: known raster extension, not an obvious logo stub.
func imageURL(doc *html.Node, baseURL string) string {
	exprs := []struct{ expr, attr string }{
		{"//img[@itemprop='image']", "src"},
		{"//img[@itemprop='associatedMedia']", "src"},
		{"//meta[@property='og:image' or @name='og:image']", "content"},
	}
	for _, q := range exprs {
		n := htmlquery.FindOne(doc, q.expr)
		if n == nil {
			continue
		}
		raw := strings.TrimSpace(htmlquery.SelectAttr(n, q.attr))
		if raw == "" {
			continue
		}
		if !validImagePath(raw) {
			return ""
		}
		return absoluteURL(raw, baseURL)
	}
	return ""
}

// validImagePath gates the image path on extension and logo-stub markers.
func validImagePath(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	path := strings.ToLower(u.Path)
	dot := strings.LastIndex(path, ".")
	if dot < 0 || !imageExtensions[path[dot+1:]] {
		return false
	}
	for _, stub := range logoStubs {
		if strings.Contains(path, stub) {
			return false
		}
	}
	return true
}

// absoluteURL resolves href against base, returning href unchanged when it
// is already absolute or the base is unusable.
func absoluteURL(href, base string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() || base == "" {
		return href
	}
	b, err := url.Parse(base)
	if err != nil || b.Host == "" {
		return href
	}
	return b.ResolveReference(u).String()
}

// longestCommonSentence returns the longest run of words shared by two
// strings, compared word-for-word.
func longestCommonSentence(a, b string) string {
	aw := strings.Split(a, " ")
	bw := strings.Split(b, " ")

	m := make([][]int, len(aw)+1)
	for i := range m {
		m[i] = make([]int, len(bw)+1)
	}
	longest, end := 0, 0
	for i := 1; i <= len(aw); i++ {
		for j := 1; j <= len(bw); j++ {
			if aw[i-1] != bw[j-1] {
				continue
			}
			m[i][j] = m[i-1][j-1] + 1
			if m[i][j] > longest {
				longest = m[i][j]
				end = i
			}
		}
	}
	return strings.Join(aw[end-longest:end], " ")
}
