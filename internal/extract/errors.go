package extract

import (
	"errors"
	"fmt"
)

// ErrNoContent reports that no content region scored above the minimum
// threshold. Callers must surface this instead of returning an empty result.
var ErrNoContent = errors.New("no article content found")

// wrapParse adds context to an HTML parsing failure.
func wrapParse(err error) error {
	return fmt.Errorf("extract: parse document: %w", err)
}

// wrapRender adds context to a serialization failure.
func wrapRender(err error) error {
	return fmt.Errorf("extract: render fragment: %w", err)
}
