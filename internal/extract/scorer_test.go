package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassWeight(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		sel      string
		positive []string
		negative []string
		want     float64
	}{
		{
			name: "positive pattern",
			html: `<div class="article"></div>`,
			sel:  "div",
			want: 25,
		},
		{
			name: "negative pattern",
			html: `<div class="comment"></div>`,
			sel:  "div",
			want: -25,
		},
		{
			name: "positive pattern on both class and id",
			html: `<div class="article" id="main-content"></div>`,
			sel:  "div",
			want: 50,
		},
		{
			name: "no attributes",
			html: `<div></div>`,
			sel:  "div",
			want: 0,
		},
		{
			name:     "caller positive keyword",
			html:     `<div class="recipe-card"></div>`,
			sel:      "div",
			positive: []string{"recipe"},
			want:     25,
		},
		{
			name:     "caller negative keyword",
			html:     `<div class="subscribe-box"></div>`,
			sel:      "div",
			negative: []string{"subscribe"},
			want:     -25,
		},
		{
			name:     "tag keyword targets element name",
			html:     `<aside></aside>`,
			sel:      "aside",
			positive: []string{"tag-aside"},
			want:     25,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := newScorer(DefaultScoringConfig(), tt.positive, tt.negative)
			doc := parseFragment(t, tt.html)
			assert.Equal(t, tt.want, sc.classWeight(doc.Find(tt.sel)))
		})
	}
}

func TestScoreParagraphs(t *testing.T) {
	src := `<html><body>
		<div class="article-body">
			<p>This paragraph carries enough text, with a comma, to pass the minimum length threshold and contribute a score.</p>
			<p>A second paragraph strengthens the parent, pushing the container well above any sibling on the page.</p>
		</div>
		<div class="short"><p>Tiny.</p></div>
	</body></html>`

	sc := newScorer(DefaultScoringConfig(), nil, nil)
	doc := parseFragment(t, src)

	candidates := sc.scoreParagraphs(doc.Find("body"))
	require.NotEmpty(t, candidates)

	best := bestCandidate(candidates)
	require.NotNil(t, best)
	cls, _ := best.sel.Attr("class")
	assert.Equal(t, "article-body", cls)
	assert.Greater(t, best.score, 0.0)

	// The paragraph under the length threshold must not create a candidate
	// for its parent.
	shortNode := doc.Find("div.short").Get(0)
	_, ok := candidates[shortNode]
	assert.False(t, ok)
}

func TestScoreParagraphsGrandparentShare(t *testing.T) {
	src := `<html><body>
		<div id="outer"><div id="inner">
			<p>One sufficiently long paragraph, with a comma, that scores its parent fully and its grandparent at half strength.</p>
		</div></div>
	</body></html>`

	sc := newScorer(DefaultScoringConfig(), nil, nil)
	doc := parseFragment(t, src)

	candidates := sc.scoreParagraphs(doc.Find("body"))
	inner, ok := candidates[doc.Find("#inner").Get(0)]
	require.True(t, ok)
	outer, ok := candidates[doc.Find("#outer").Get(0)]
	require.True(t, ok)

	assert.Greater(t, inner.score, 0.0)
	assert.Greater(t, outer.score, 0.0)
	assert.Greater(t, inner.score, outer.score)
}

func TestBestCandidateEmpty(t *testing.T) {
	assert.Nil(t, bestCandidate(nil))
}
