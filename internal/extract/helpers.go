package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// normalizeSpace collapses all runs of whitespace into single spaces and
// trims the result.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// innerText returns the normalized visible text of a selection.
func innerText(s *goquery.Selection) string {
	return normalizeSpace(s.Text())
}

// textLength returns the length of the normalized visible text.
func textLength(s *goquery.Selection) int {
	return len(innerText(s))
}

// nodeText collects the raw text content of a node subtree.
func nodeText(node *html.Node) string {
	if node.Type == html.TextNode {
		return node.Data
	}
	var sb strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		sb.WriteString(nodeText(child))
	}
	return sb.String()
}

// linkDensity is the ratio of anchor-wrapped text to total text within an
// element. High density suggests navigation rather than article content.
func linkDensity(s *goquery.Selection) float64 {
	linkLen := 0
	s.Find("a").Each(func(_ int, a *goquery.Selection) {
		linkLen += textLength(a)
	})
	total := textLength(s)
	if total < 1 {
		total = 1
	}
	return float64(linkLen) / float64(total)
}

// matches reports whether any keyword occurs as a case-insensitive substring
// of attr.
func matches(attr string, keywords []string) bool {
	if attr == "" || len(keywords) == 0 {
		return false
	}
	attr = strings.ToLower(attr)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(attr, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// matchString concatenates the class and id attributes of a selection, the
// string the keyword and regex checks run against.
func matchString(s *goquery.Selection) string {
	return s.AttrOr("class", "") + " " + s.AttrOr("id", "")
}

// detached reports whether node is no longer attached to root.
func detached(node, root *html.Node) bool {
	for n := node; n != nil; n = n.Parent {
		if n == root {
			return false
		}
	}
	return true
}

// stripAttributes removes every attribute from the subtree rooted at node.
// The cleaned fragment carries structure and text only.
func stripAttributes(node *html.Node) {
	if node.Type == html.ElementNode {
		node.Attr = nil
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		stripAttributes(child)
	}
}

// renderNode serializes a node subtree back to HTML.
func renderNode(node *html.Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}
