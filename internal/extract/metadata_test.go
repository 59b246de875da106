package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "itemprop headline wins",
			html: `<html><head><title>Site | Something Else</title></head>
				<body><h1 itemprop="headline">Exact Headline</h1></body></html>`,
			want: "Exact Headline",
		},
		{
			name: "itemprop name as fallback",
			html: `<html><body><span itemprop="name">Named Article</span></body></html>`,
			want: "Named Article",
		},
		{
			name: "title trimmed against heading",
			html: `<html><head><title>Big Crash on Highway Five - Example News</title></head>
				<body><h1>Big Crash on Highway Five</h1></body></html>`,
			want: "Big Crash on Highway Five",
		},
		{
			name: "og title preferred over title tag",
			html: `<html><head>
				<meta property="og:title" content="Shared Headline">
				<title>Shared Headline And A Slogan</title></head>
				<body><h2>Shared Headline</h2></body></html>`,
			want: "Shared Headline",
		},
		{
			name: "dash glyphs normalized before comparison",
			html: `<html><head><title>Budget Vote — Council Decides | Example News</title></head>
				<body><h1>Budget Vote - Council Decides</h1></body></html>`,
			want: "Budget Vote - Council Decides",
		},
		{
			name: "guillemets normalized before comparison",
			html: `<html><head><title>«Comet Watch» — Example News</title></head>
				<body><h1>"Comet Watch"</h1></body></html>`,
			want: `"Comet Watch"`,
		},
		{
			name: "no heading overlap keeps page title",
			html: `<html><head><title>Completely Standalone Title</title></head>
				<body><h1>Unrelated Heading</h1></body></html>`,
			want: "Completely Standalone Title",
		},
		{
			name: "no markup at all",
			html: `<html><body><p>text</p></body></html>`,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := documentMetadata(tt.html, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, meta.title)
		})
	}
}

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		baseURL string
		want    string
	}{
		{
			name:    "rel canonical wins",
			html:    `<html><head><link rel="canonical" href="https://a.example.com/x"><meta property="og:url" content="https://b.example.com/y"></head></html>`,
			baseURL: "https://c.example.com/z",
			want:    "https://a.example.com/x",
		},
		{
			name:    "og url fallback",
			html:    `<html><head><meta property="og:url" content="https://b.example.com/y"></head></html>`,
			baseURL: "https://c.example.com/z",
			want:    "https://b.example.com/y",
		},
		{
			name:    "base url fallback",
			html:    `<html><head></head></html>`,
			baseURL: "https://c.example.com/z",
			want:    "https://c.example.com/z",
		},
		{
			name:    "relative canonical resolved",
			html:    `<html><head><link rel="canonical" href="/news/42"></head></html>`,
			baseURL: "https://c.example.com/z",
			want:    "https://c.example.com/news/42",
		},
		{
			name: "nothing anywhere",
			html: `<html></html>`,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := documentMetadata(tt.html, tt.baseURL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, meta.canonicalURL)
		})
	}
}

func TestImageURL(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "itemprop image wins",
			html: `<html><body><img itemprop="image" src="https://img.example.com/a/lead.jpg"><meta property="og:image" content="https://img.example.com/b/other.jpg"></body></html>`,
			want: "https://img.example.com/a/lead.jpg",
		},
		{
			name: "og image fallback",
			html: `<html><head><meta property="og:image" content="https://img.example.com/b/other.png"></head></html>`,
			want: "https://img.example.com/b/other.png",
		},
		{
			name: "relative image resolved",
			html: `<html><head><meta property="og:image" content="/media-assets/lead.jpg"></head></html>`,
			want: "https://c.example.com/media-assets/lead.jpg",
		},
		{
			name: "logo stub rejected",
			html: `<html><head><meta property="og:image" content="https://img.example.com/logo.png"></head></html>`,
			want: "",
		},
		{
			name: "share image rejected",
			html: `<html><head><meta property="og:image" content="https://img.example.com/share-card.jpg"></head></html>`,
			want: "",
		},
		{
			name: "unknown extension rejected",
			html: `<html><head><meta property="og:image" content="https://img.example.com/lead.svg"></head></html>`,
			want: "",
		},
		{
			name: "no image markup",
			html: `<html><body><img src="https://img.example.com/inline.jpg"></body></html>`,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := documentMetadata(tt.html, "https://c.example.com/z")
			require.NoError(t, err)
			assert.Equal(t, tt.want, meta.imageURL)
		})
	}
}

func TestValidImagePath(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"https://img.example.com/a/lead.jpg", true},
		{"https://img.example.com/a/lead.jpeg", true},
		{"https://img.example.com/a/anim.gif", true},
		{"https://img.example.com/a/lead.png", true},
		{"https://img.example.com/a/lead.webp", false},
		{"https://img.example.com/a/noext", false},
		{"https://img.example.com/site-logo.png", false},
		{"https://img.example.com/facebook-card.jpg", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, validImagePath(tt.raw), tt.raw)
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Plain Title", "Plain Title"},
		{"Dashes — and – more", "Dashes - and - more"},
		{"Entities &mdash; here &ndash; too", "Entities - here - too"},
		{"«Quoted» and &quot;quoted&quot;", `"Quoted" and "quoted"`},
		{"non\u00a0breaking  spaces", "non breaking spaces"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeTitle(tt.in), tt.in)
	}
}

func TestLongestCommonSentence(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"one two three four", "zero two three five", "two three"},
		{"alpha beta", "gamma delta", ""},
		{"same words here", "same words here", "same words here"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, longestCommonSentence(tt.a, tt.b))
	}
}
