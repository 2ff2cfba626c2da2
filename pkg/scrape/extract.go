package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/websage/answerd/pkg/shared/stringutil"
)

// contentSelectors is the ordered preference list for locating the main
// content of a page. The first selector matching at least one element wins
// outright; results are never merged across selector types. The list is a
// tunable, not a contract.
var contentSelectors = []string{
	"article",
	"main",
	"[role='main']",
	"#content",
	"#main-content",
	".post-content",
	".entry-content",
	".article-body",
	".content",
}

// boilerplateSelector matches regions stripped before the whole-document
// fallback: chrome, scripts, and common ad containers.
const boilerplateSelector = "script, style, noscript, template, iframe, form, nav, header, footer, aside, " +
	"[role='navigation'], [role='banner'], [role='contentinfo'], [role='complementary'], " +
	".sidebar, .ads, .advertisement"

// Extract isolates the readable text of an HTML document and caps it at
// maxChars characters. It is a pure function with no I/O. Malformed or empty
// input yields an empty string, which the fetch layer does not treat as an
// error.
func Extract(html string, maxChars int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	for _, selector := range contentSelectors {
		matches := doc.Find(selector)
		if matches.Length() == 0 {
			continue
		}
		parts := make([]string, 0, matches.Length())
		matches.Each(func(_ int, sel *goquery.Selection) {
			if text := stringutil.CollapseWhitespace(sel.Text()); text != "" {
				parts = append(parts, text)
			}
		})
		return truncate(strings.Join(parts, " "), maxChars)
	}

	doc.Find(boilerplateSelector).Remove()
	return truncate(stringutil.CollapseWhitespace(doc.Text()), maxChars)
}
