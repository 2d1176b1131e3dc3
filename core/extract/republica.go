package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/newspipe/core"
	"github.com/gaurav-prasanna/newspipe/core/normalize"
)

// Republica extracts articles from myrepublica.nagariknetwork.com.
type Republica struct{}

func (Republica) Name() string   { return "Republica" }
func (Republica) Domain() string { return "myrepublica.nagariknetwork.com" }

func (Republica) Content(doc *goquery.Document) *goquery.Selection {
	return doc.Find("div#content").First()
}

// Extract strips the "KATHMANDU, Jan 12:" dateline from body paragraphs and
// takes the date from the datetime attribute of time#pub-date.
func (s Republica) Extract(doc *goquery.Document, pageURL string) core.Article {
	return core.Article{
		Category: text(doc, "span.rep-body--small--sans.text-primary-blue"),
		Title:    joinTitle(text(doc, "h1.rep-headline--large"), text(doc, "div.rep-body--large")),
		Body:     body(paragraphs(s.Content(doc), normalize.DatelineAbbrev)),
		Source:   s.Name(),
		Date:     normalize.NormalizeDate(attr(doc, "time#pub-date", "datetime")),
	}
}
