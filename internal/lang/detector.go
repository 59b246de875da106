// Package lang identifies the language of extracted article text.
// Detection is auxiliary: failures degrade to Unknown and never fail the
// pipeline.
package lang

import (
	"strings"

	"github.com/RadhiFadlillah/whatlanggo"
)

// Unknown is returned when detection is unreliable or the language has no
// two-letter mapping.
const Unknown = "unknown"

// codes maps detected languages to the two-letter codes the summarizer's
// stopword lists understand.
var codes = map[whatlanggo.Lang]string{
	whatlanggo.Dan: "da",
	whatlanggo.Deu: "de",
	whatlanggo.Eng: "en",
	whatlanggo.Spa: "es",
	whatlanggo.Fin: "fi",
	whatlanggo.Fra: "fr",
	whatlanggo.Hun: "hu",
	whatlanggo.Ita: "it",
	whatlanggo.Nld: "nl",
	whatlanggo.Nob: "no",
	whatlanggo.Por: "pt",
	whatlanggo.Rus: "ru",
	whatlanggo.Swe: "sv",
	whatlanggo.Tur: "tr",
}

// Detect returns the two-letter language code of text, or Unknown when the
// text is empty, the detection is unreliable, or the language is not in the
// supported set.
func Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return Unknown
	}
	info := whatlanggo.Detect(text)
	code, ok := codes[info.Lang]
	if !ok || !info.IsReliable() {
		return Unknown
	}
	return code
}
