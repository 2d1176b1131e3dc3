package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/newspipe/core"
	"github.com/gaurav-prasanna/newspipe/core/normalize"
)

// OnlineKhabar extracts English articles from onlinekhabar.com.
type OnlineKhabar struct{}

func (OnlineKhabar) Name() string   { return "OnlineKhabar" }
func (OnlineKhabar) Domain() string { return "onlinekhabar.com" }

func (OnlineKhabar) Content(doc *goquery.Document) *goquery.Selection {
	return doc.Find("div.post-content-wrap").First()
}

// Extract reads the publish time from the article:published_time meta tag.
// Body paragraphs open with a "Kathmandu, January 28" dateline.
func (s OnlineKhabar) Extract(doc *goquery.Document, pageURL string) core.Article {
	return core.Article{
		Category: text(doc, `a[href*="/category/"]`),
		Title:    text(doc, "div.ok-post-header h1"),
		Body:     body(paragraphs(s.Content(doc), normalize.DatelineFullMonth)),
		Source:   s.Name(),
		Date:     normalize.NormalizeDate(attr(doc, `meta[property="article:published_time"]`, "content")),
	}
}
