package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/newspipe/core"
	"github.com/gaurav-prasanna/newspipe/core/normalize"
)

// KathmanduPost extracts articles from kathmandupost.com.
type KathmanduPost struct{}

func (KathmanduPost) Name() string   { return "Kathmandu Post" }
func (KathmanduPost) Domain() string { return "kathmandupost.com" }

func (KathmanduPost) Content(doc *goquery.Document) *goquery.Selection {
	return doc.Find("section.story-section").First()
}

// Extract joins the headline with its deck and reads the free-text
// "Published at : February 26, 2019" line for the date.
func (s KathmanduPost) Extract(doc *goquery.Document, pageURL string) core.Article {
	return core.Article{
		Category: text(doc, "h4.title--line__red a"),
		Title:    joinTitle(text(doc, "div.col-sm-8 h1"), text(doc, "div.col-sm-8 span.title-sub")),
		Body:     body(paragraphs(s.Content(doc), normalize.DatelineNone)),
		Source:   s.Name(),
		Date:     normalize.ParseFreeDate(text(doc, "div.updated-time")),
	}
}
