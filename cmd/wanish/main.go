// Package main provides the wanish command line: fetch a web page, extract
// the article and print the cleaned HTML, the metadata and an extractive
// summary.
//
// Usage:
//
//	wanish https://example.com/article
//	wanish --html page.html --format text
//
// See --help for all options.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
