// Package extract implements the per-source field extractors and the router
// that picks one for a URL.
//
// Every source maps its own markup onto core.Article. Missing structure never
// fails an extraction: the affected field is left empty. Only parsing the
// markup itself can fail.
package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/newspipe/core"
	"github.com/gaurav-prasanna/newspipe/core/normalize"
)

// MinParagraphLength is the rune count a cleaned paragraph must exceed to be
// kept. Shorter paragraphs are captions, credits and share prompts.
const MinParagraphLength = 40

// paragraphSeparator joins retained paragraphs into a body.
const paragraphSeparator = "\n\n"

// noiseSelectors are removed from a content container before its
// paragraphs are read. Their text would otherwise leak into Text().
var noiseSelectors = []string{"script", "style", "noscript", "iframe"}

// SourceExtractor maps one site's markup onto the canonical record.
type SourceExtractor interface {
	// Name is the fixed Source label written to the dataset.
	Name() string
	// Domain is the hostname fragment the router matches URLs against.
	Domain() string
	// Extract builds a record from a parsed page. ID and Link are left for
	// the caller to fill.
	Extract(doc *goquery.Document, pageURL string) core.Article
	// Content returns the article's main content container, which may be
	// empty when the page lacks one.
	Content(doc *goquery.Document) *goquery.Selection
}

// Parse turns raw markup into a document.
func Parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// text returns the cleaned text of the first element matching selector.
func text(doc *goquery.Document, selector string) string {
	return normalize.CleanText(doc.Find(selector).First().Text())
}

// attr returns the named attribute of the first element matching selector.
func attr(doc *goquery.Document, selector, name string) string {
	v, _ := doc.Find(selector).First().Attr(name)
	return strings.TrimSpace(v)
}

// joinTitle combines a heading with an optional sub-heading.
func joinTitle(heading, subheading string) string {
	if subheading == "" {
		return heading
	}
	return heading + ": " + subheading
}

// paragraphs collects the body paragraphs of container in document order.
// Each <p> is whitespace-collapsed and dateline-stripped, and kept only if
// it is longer than MinParagraphLength.
func paragraphs(container *goquery.Selection, style normalize.DatelineStyle) []string {
	if container.Length() == 0 {
		return nil
	}
	for _, sel := range noiseSelectors {
		container.Find(sel).Remove()
	}

	var out []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		txt := normalize.CleanText(p.Text())
		txt = strings.TrimSpace(normalize.StripDateline(txt, style))
		if utf8.RuneCountInString(txt) > MinParagraphLength {
			out = append(out, txt)
		}
	})
	return out
}

// body joins paragraphs with a blank line between them.
func body(paras []string) string {
	return strings.Join(paras, paragraphSeparator)
}

// ExtractArticle parses html and runs s over it. A panic inside s is
// recovered and reported as a *core.ExtractionError like a parse failure.
func ExtractArticle(s SourceExtractor, html, pageURL string) (art core.Article, err error) {
	defer func() {
		if r := recover(); r != nil {
			art = core.Article{}
			err = &core.ExtractionError{URL: pageURL, Source: s.Name(), Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	doc, err := Parse(html)
	if err != nil {
		return core.Article{}, &core.ExtractionError{URL: pageURL, Source: s.Name(), Err: err}
	}

	art = s.Extract(doc, pageURL)
	art.Link = pageURL
	return art, nil
}
