package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText collapses a scraped text node into a single printable line.
func CleanText(s string) string {
	s = removeNonPrintable(s)
	s = strings.Trim(s, " \t\n")
	return innerWhitespace.ReplaceAllString(s, " ")
}

// Cell is one table cell: its cleaned text plus the href of the first anchor
// inside it, if any. Stat tables link player names to their profile pages, so
// the href is how native site ids are recovered.
type Cell struct {
	Text string
	Href string
}

// Row is one table row's cells in document order.
type Row []Cell

// Tables extracts every <table> in the document as rows of cells. Header rows
// (<th>) are included like any other row; callers skip or use them by
// position.
func Tables(doc *goquery.Document) []([]Row) {
	var tables []([]Row)
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		var rows []Row
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var row Row
			tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				href, _ := cell.Find("a").First().Attr("href")
				row = append(row, Cell{
					Text: CleanText(cell.Text()),
					Href: href,
				})
			})
			if len(row) > 0 {
				rows = append(rows, row)
			}
		})
		if len(rows) > 0 {
			tables = append(tables, rows)
		}
	})
	return tables
}

// Texts returns just the text of each cell in the row.
func (r Row) Texts() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.Text
	}
	return out
}
