package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/newspipe/core"
	"github.com/gaurav-prasanna/newspipe/core/normalize"
)

// Setopati extracts English articles from setopati.com. The site has no
// category element; the category is the first segment of the URL path.
type Setopati struct{}

func (Setopati) Name() string   { return "Setopati" }
func (Setopati) Domain() string { return "setopati.com" }

func (Setopati) Content(doc *goquery.Document) *goquery.Selection {
	return doc.Find("div.editor-box").First()
}

func (s Setopati) Extract(doc *goquery.Document, pageURL string) core.Article {
	published := text(doc, "div.published-date span.pub-date")
	published = strings.TrimSpace(strings.Replace(published, "Published Date:", "", 1))

	return core.Article{
		Category: setopatiCategory(pageURL),
		Title:    text(doc, "div.title-names span.news-big-title"),
		Body:     body(paragraphs(s.Content(doc), normalize.DatelineNone)),
		Source:   s.Name(),
		Date:     normalize.NormalizeDate(published),
	}
}

// setopatiCategory turns "https://en.setopati.com/political-news/123" into
// "Political News".
func setopatiCategory(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	segment, _, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	if segment == "" {
		return ""
	}
	return normalize.TitleCase(strings.ReplaceAll(segment, "-", " "))
}
