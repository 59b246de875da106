package wanish

import (
	"context"
	"strings"

	"github.com/neegor/wanish/internal/extract"
	"github.com/neegor/wanish/internal/fetch"
	"github.com/neegor/wanish/internal/lang"
	"github.com/neegor/wanish/internal/summary"
)

// Wanish is an immutable pipeline configuration. Construct it once with New
// and reuse it from any number of goroutines.
type Wanish struct {
	cfg    settings
	client *fetch.Client
}

// New builds a Wanish instance from the given options.
func New(opts ...Option) *Wanish {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Wanish{
		cfg: cfg,
		client: &fetch.Client{
			HTTPClient: cfg.httpClient,
			UserAgent:  cfg.userAgent,
			Headers:    cfg.headers,
			Timeout:    cfg.timeout,
			Logger:     cfg.logger,
		},
	}
}

// Run fetches a URL and executes the full pipeline on its body. The context
// cancels the fetch; on timeout the run fails with a *FetchError.
func (w *Wanish) Run(ctx context.Context, rawURL string) (*Report, error) {
	body, finalURL, err := w.client.Page(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return w.pipeline(ctx, body, finalURL)
}

// RunHTML executes the pipeline on raw HTML. baseURL may be empty; when set
// it absolutizes metadata URLs and becomes the canonical fallback.
func (w *Wanish) RunHTML(ctx context.Context, src, baseURL string) (*Report, error) {
	return w.pipeline(ctx, src, baseURL)
}

// pipeline extracts the article, detects its language, ranks the sentences
// and assembles the report. Stages run strictly in sequence; every stage
// reads only the output of the previous one.
func (w *Wanish) pipeline(ctx context.Context, src, baseURL string) (*Report, error) {
	res, err := extract.Extract(src, extract.Options{
		PositiveKeywords: w.cfg.positiveKeywords,
		NegativeKeywords: w.cfg.negativeKeywords,
		BaseURL:          baseURL,
		Scoring:          &w.cfg.scoring,
		Logger:           w.cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	sents := summary.CompleteSentences(res.Paragraphs)
	text := strings.Join(sents, " ")

	code := lang.Detect(text)
	if code == lang.Unknown {
		w.cfg.logger.Debug().Msg("language detection degraded to unknown")
	}

	rankOpts := summary.DefaultOptions()
	rankOpts.MaxSentences = w.cfg.summarySentences
	rankOpts.Language = code
	selected := summary.Rank(sents, rankOpts)

	imageURL := res.ImageURL
	if w.cfg.verifyImages && imageURL != "" {
		if width := w.client.ImageWidth(ctx, imageURL); width < w.cfg.minImageWidth {
			w.cfg.logger.Debug().Str("image", imageURL).Int("width", width).Msg("rejected narrow lead image")
			imageURL = ""
		}
	}

	return &Report{
		URL:          baseURL,
		CanonicalURL: res.CanonicalURL,
		Title:        res.Title,
		ImageURL:     imageURL,
		Language:     code,
		CleanHTML:    res.HTML,
		Text:         text,
		Summary:      selected,
		Description:  strings.Join(selected, " "),
	}, nil
}
