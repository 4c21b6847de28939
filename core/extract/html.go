package extract

import (
	"bytes"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/docjoin/core"
)

// noiseSelectors are HTML elements removed before text extraction.
// These contribute no meaningful content to the page text.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
}

// extractHTML pulls <table> elements into a structured table; each
// table is treated like a page, with its first row (preferring <th>
// cells) as header. When the document has no tables, it is
// noise-stripped, converted to Markdown, and split into text lines.
func extractHTML(data []byte) core.ExtractionResult {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return core.ExtractionResult{}
	}

	var acc tableAccum
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		header, body := htmlTableRows(table)
		if len(header) > 0 {
			acc.add(header, body)
		}
	})
	if acc.table != nil {
		return acc.result()
	}

	return linesResult(htmlTextLines(doc))
}

func htmlTableRows(table *goquery.Selection) (header []string, body [][]string) {
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}
		if header == nil {
			header = cells
			return
		}
		body = append(body, cells)
	})
	return header, body
}

func htmlTextLines(doc *goquery.Document) []string {
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// Prefer the most semantically specific content container.
	var content *goquery.Selection
	for _, tag := range []string{"main", "article", "body"} {
		if sel := doc.Find(tag); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		return nil
	}

	html, err := goquery.OuterHtml(content)
	if err != nil {
		return nil
	}
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		// Markdown conversion is a nicety; raw text still serves.
		markdown = content.Text()
	}
	return strings.Split(markdown, "\n")
}
