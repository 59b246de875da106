package wanish

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSummarySentences is the upper bound on summary length when
// WithSummarySentences is not given.
const DefaultSummarySentences = 5

// DefaultMinImageWidth is the narrowest lead image accepted when image
// verification is enabled. Share buttons and logo stubs are rarely wider.
const DefaultMinImageWidth = 500

// Option configures a Wanish instance. Options follow the functional
// options pattern; unspecified options keep their documented defaults.
type Option func(*settings)

type settings struct {
	positiveKeywords []string
	negativeKeywords []string
	summarySentences int
	headers          map[string]string
	userAgent        string
	httpClient       *http.Client
	timeout          time.Duration
	logger           zerolog.Logger
	scoring          ScoringConfig
	verifyImages     bool
	minImageWidth    int
}

func defaultSettings() settings {
	return settings{
		summarySentences: DefaultSummarySentences,
		timeout:          30 * time.Second,
		logger:           zerolog.Nop(),
		scoring:          DefaultScoringConfig(),
		minImageWidth:    DefaultMinImageWidth,
	}
}

// WithPositiveKeywords boosts elements whose class or id contains any of the
// given substrings (case-insensitive).
func WithPositiveKeywords(keywords []string) Option {
	return func(s *settings) {
		s.positiveKeywords = append([]string(nil), keywords...)
	}
}

// WithNegativeKeywords penalizes matching elements and removes them during
// boilerplate cleaning.
func WithNegativeKeywords(keywords []string) Option {
	return func(s *settings) {
		s.negativeKeywords = append([]string(nil), keywords...)
	}
}

// WithSummarySentences sets the upper bound on summary sentences. Fewer are
// returned when the article is shorter. Default 5.
func WithSummarySentences(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.summarySentences = n
		}
	}
}

// WithHeaders adds extra HTTP headers to every fetch.
func WithHeaders(headers map[string]string) Option {
	return func(s *settings) {
		if len(headers) == 0 {
			return
		}
		s.headers = make(map[string]string, len(headers))
		for k, v := range headers {
			s.headers[k] = v
		}
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *settings) { s.userAgent = ua }
}

// WithHTTPClient substitutes the http.Client used for fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) { s.httpClient = client }
}

// WithTimeout bounds each network fetch. Zero disables the bound.
// Default 30s.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithLogger routes pipeline debug events to the given logger. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithScoring replaces the extraction heuristics wholesale. Start from
// DefaultScoringConfig and adjust.
func WithScoring(cfg ScoringConfig) Option {
	return func(s *settings) { s.scoring = cfg }
}

// WithImageVerification fetches the head of the lead image and drops it
// from the report when it is narrower than minWidth pixels (0 keeps the
// default). Off by default: it costs an extra request and makes the
// pipeline depend on the image host.
func WithImageVerification(minWidth int) Option {
	return func(s *settings) {
		s.verifyImages = true
		if minWidth > 0 {
			s.minImageWidth = minWidth
		}
	}
}
