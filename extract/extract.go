package extract

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Row is one scraped table row: its text content with a line break
// between text nodes, and the first link it holds.
type Row struct {
	Text string
	Link string
}

// Selector locates the rows of a page. Table picks the container (the
// TableIndex-th match); when Table is empty rows are matched document-wide.
type Selector struct {
	Table      string
	TableIndex int
	Row        string
}

func (s Selector) String() string {
	if s.Table == "" {
		return s.Row
	}

	return fmt.Sprintf("%s[%d] %s", s.Table, s.TableIndex, s.Row)
}

// Rows extracts every row matched by sel. Relative links are resolved
// against base.
func Rows(body []byte, base string, sel Selector) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var baseURL *url.URL
	if base != "" {
		if baseURL, err = url.Parse(base); err != nil {
			return nil, fmt.Errorf("parse base url: %w", err)
		}
	}

	scope := doc.Selection
	if sel.Table != "" {
		tables := doc.Find(sel.Table)
		if sel.TableIndex < 0 || sel.TableIndex >= tables.Length() {
			return nil, fmt.Errorf("selector %s: found %d containers", sel, tables.Length())
		}
		scope = tables.Eq(sel.TableIndex)
	}

	var rows []Row
	scope.Find(sel.Row).Each(func(i int, s *goquery.Selection) {
		rows = append(rows, Row{
			Text: Text(s),
			Link: link(s, baseURL),
		})
	})

	return rows, nil
}

// Text flattens the selection's text nodes, one per line. Script and
// style content is left out.
func Text(s *goquery.Selection) string {
	var b strings.Builder
	for _, n := range s.Nodes {
		walk(&b, n)
	}

	return b.String()
}

func walk(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		b.WriteByte('\n')
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(b, c)
	}
}

func link(s *goquery.Selection, base *url.URL) string {
	href, ok := s.Attr("href")
	if !ok {
		href, ok = s.Find("a[href]").First().Attr("href")
	}
	if !ok {
		return ""
	}
	href = strings.TrimSpace(href)
	if base == nil {
		return href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}

	return base.ResolveReference(u).String()
}
