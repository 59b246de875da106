package wanish

import (
	"github.com/neegor/wanish/internal/extract"
	"github.com/neegor/wanish/internal/fetch"
	"github.com/neegor/wanish/internal/lang"
)

// FetchError reports a failed page fetch: network error, timeout or an
// unusable HTTP response. Retrying is caller policy; the pipeline never
// retries internally.
type FetchError = fetch.FetchError

// ErrNoContent reports that extraction found no content region above the
// minimum threshold. It is terminal for the run and surfaced instead of an
// empty report.
var ErrNoContent = extract.ErrNoContent

// LangUnknown is the Report.Language value when detection was unreliable.
// Language identification is auxiliary, so its failure degrades the report
// rather than failing the pipeline.
const LangUnknown = lang.Unknown
