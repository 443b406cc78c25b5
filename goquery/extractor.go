// Package goquery provides a goquery-based implementation of
// coincidence.TextExtractor for rendered Wikipedia pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mkohler/coincidence"
)

// Ensure Extractor implements coincidence.TextExtractor at compile time.
var _ coincidence.TextExtractor = (*Extractor)(nil)

// chromeSelector matches the page furniture that drowns out article
// prose: scripts, styles, reference superscripts, edit links, and the
// big navigation and infobox tables.
const chromeSelector = "script, style, table, sup.reference, .mw-editsection, .navbox, .infobox, .hatnote, #toc"

// Extractor pulls the article body out of a rendered Wikipedia page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes rendered page HTML and returns the article content.
// The title comes from the page heading, falling back to the document
// title. Returns ENOTFOUND when the page has no recognizable content
// container.
func (e *Extractor) Extract(html string) (*coincidence.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, coincidence.Errorf(coincidence.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("#firstHeading").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	content := doc.Find("#mw-content-text").First()
	if content.Length() == 0 {
		content = doc.Find("#content").First()
	}
	if content.Length() == 0 {
		content = doc.Find("body").First()
	}
	if content.Length() == 0 {
		return nil, coincidence.Errorf(coincidence.ENOTFOUND, "no article content in page")
	}

	content.Find(chromeSelector).Remove()

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content.Text()) == "" {
		return nil, coincidence.Errorf(coincidence.ENOTFOUND, "no article content in page")
	}

	return &coincidence.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}
