// Package wanish turns a web page into a structured article report: the
// canonical URL, title, lead image, language, cleaned HTML and an extractive
// summary of at most N sentences.
//
// The pipeline fetches the page, extracts the article, detects its language,
// ranks the sentences and returns an immutable Report. A Wanish value is a
// reusable, read-only
// configuration; every Run or RunHTML call executes the full pipeline and
// produces a fresh Report, so concurrent runs never share mutable state.
//
//	w := wanish.New(
//		wanish.WithSummarySentences(3),
//		wanish.WithNegativeKeywords([]string{"promo"}),
//	)
//	report, err := w.Run(ctx, "https://example.com/article")
//	if err != nil {
//		// *wanish.FetchError or wanish.ErrNoContent
//	}
//	fmt.Println(report.Title, report.Description)
package wanish
