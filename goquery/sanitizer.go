// Package goquery implements boilerplate removal and structured
// content extraction on top of goquery's CSS-selectable DOM.
package goquery

import (
	"github.com/PuerkitoBio/goquery"
)

// boilerplateSelectors match nodes that never carry narrative content:
// scripts, styles, embedded media, page chrome landmarks and their
// common class aliases, and interactive controls.
var boilerplateSelectors = []string{
	"script", "style", "noscript", "template",
	"iframe", "embed", "object", "video", "audio", "canvas",
	"header", "footer", "nav", "aside",
	"[role='navigation']", "[role='banner']", "[role='contentinfo']",
	".header", ".footer", ".nav", ".navbar", ".navigation", ".menu", ".sidebar",
	".site-header", ".site-footer", ".page-header", ".page-footer",
	"button", "[role='button']",
	"form",
}

// narrativeAncestors are the containers that mark a form control as
// part of running text rather than standalone chrome.
const narrativeAncestors = "p, blockquote, li"

// Sanitize removes boilerplate nodes from the document in place and
// returns the same document for chaining. Removal order does not
// affect the result; absence of matching nodes is a no-op.
func Sanitize(doc *goquery.Document) *goquery.Document {
	for _, selector := range boilerplateSelectors {
		doc.Find(selector).Remove()
	}

	// Standalone form controls go; controls embedded in narrative
	// text stay with their surrounding prose.
	doc.Find("input, select, textarea").Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered(narrativeAncestors).Length() == 0 {
			s.Remove()
		}
	})

	return doc
}
