// Package summary produces an extractive summary: sentences are scored by
// word-frequency salience with a lead-position bonus, and the top K are
// returned in original document order.
package summary

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/unicode/norm"
)

// terminators are the punctuation marks that end a complete sentence.
const terminators = ".!?…"

// Sentences splits text into trimmed, non-empty sentences using UAX #29
// segmentation.
func Sentences(text string) []string {
	var out []string
	segs := sentences.FromString(text)
	for segs.Next() {
		if s := strings.TrimSpace(segs.Value()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Words splits a sentence into tokens that contain at least one letter or
// digit, dropping bare punctuation and whitespace segments.
func Words(sentence string) []string {
	var out []string
	segs := words.FromString(sentence)
	for segs.Next() {
		token := strings.TrimSpace(segs.Value())
		if token == "" {
			continue
		}
		if strings.ContainsFunc(token, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}) {
			out = append(out, token)
		}
	}
	return out
}

// CompleteSentences extracts the sentences from each paragraph that end with
// terminal punctuation and are not digit-only, in order. Fragments such as
// captions, bylines and timestamps are left out of the summary input.
func CompleteSentences(paragraphs []string) []string {
	var out []string
	for _, p := range paragraphs {
		for _, s := range Sentences(norm.NFKC.String(p)) {
			if !hasTerminator(s) || digitsOnly(s) {
				continue
			}
			out = append(out, s)
		}
	}
	return out
}

// hasTerminator reports whether the sentence ends with terminal punctuation,
// allowing a trailing closing quote or bracket.
func hasTerminator(s string) bool {
	trimmed := strings.TrimRightFunc(s, func(r rune) bool {
		return unicode.In(r, unicode.Pf, unicode.Pe) || r == '"' || r == '\''
	})
	if trimmed == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(trimmed)
	return strings.ContainsRune(terminators, last)
}

// digitsOnly reports whether a sentence carries nothing but digits once
// terminators, spaces and punctuation are stripped.
func digitsOnly(s string) bool {
	stripped := strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || strings.ContainsRune(terminators, r)
	})
	if stripped == "" {
		return true
	}
	for _, r := range stripped {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
