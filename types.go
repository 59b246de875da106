package wanish

import (
	"fmt"
	"html"
	"strings"

	"github.com/neegor/wanish/internal/extract"
)

// ScoringConfig exposes the extraction heuristics: tag weights, keyword
// weights, link-density and sibling-merge thresholds. See
// DefaultScoringConfig for the documented defaults.
type ScoringConfig = extract.ScoringConfig

// DefaultScoringConfig returns the default extraction heuristics.
func DefaultScoringConfig() ScoringConfig {
	return extract.DefaultScoringConfig()
}

// Report is the immutable outcome of one pipeline run. All fields are
// populated when the run succeeds; optional metadata fields are empty when
// the document carries no matching markup.
type Report struct {
	// URL is the final URL after redirects, or the base URL for raw HTML
	// runs.
	URL string `json:"url,omitempty"`
	// CanonicalURL is the author-declared authoritative URL, falling back
	// to URL.
	CanonicalURL string `json:"canonical_url,omitempty"`
	// Title of the article, empty when no markup matched.
	Title string `json:"title,omitempty"`
	// ImageURL of the lead image, empty when absent or rejected.
	ImageURL string `json:"image_url,omitempty"`
	// Language is the two-letter code of the article text, or "unknown"
	// when detection degraded.
	Language string `json:"language"`
	// CleanHTML is the extracted article fragment with boilerplate and
	// attributes stripped.
	CleanHTML string `json:"clean_html"`
	// Text is the plain-text article content fed to the summarizer:
	// complete sentences only, in document order.
	Text string `json:"text"`
	// Summary holds the selected sentences in document order.
	Summary []string `json:"summary"`
	// Description is the summary sentences joined into one string.
	Description string `json:"description"`
}

// articleShell is the page template for ArticleHTML, carrying the report
// metadata as schema.org Article markup.
const articleShell = `<!DOCTYPE html>
<html lang="%[1]s">
<head>
    <meta charset="utf-8">
    <meta http-equiv="X-UA-Compatible" content="IE=edge">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>%[2]s</title>
%[3]s</head>
<body>

<article itemscope itemtype="http://schema.org/Article">
    <meta itemprop="inLanguage" content="%[1]s">
%[4]s    <h1 itemprop="headline">%[2]s</h1>
    <div itemprop="articleBody">
%[5]s        %[6]s
    </div>
</article>

</body>
</html>
`

// ArticleHTML renders the report as a standalone HTML page with schema.org
// Article markup.
func (r *Report) ArticleHTML() string {
	title := html.EscapeString(r.Title)

	descriptionMeta := ""
	if r.Description != "" {
		descriptionMeta = fmt.Sprintf("    <meta name=\"description\" content=\"%s\">\n", html.EscapeString(r.Description))
	}

	imageMeta, imageTag := "", ""
	if r.ImageURL != "" {
		escaped := html.EscapeString(r.ImageURL)
		imageMeta = fmt.Sprintf("    <meta itemprop=\"image\" content=\"%s\">\n", escaped)
		imageTag = fmt.Sprintf("        <img src=\"%s\" />\n", escaped)
	}

	body := strings.TrimSpace(r.CleanHTML)
	return fmt.Sprintf(articleShell, r.Language, title, descriptionMeta, imageMeta, imageTag, body)
}
