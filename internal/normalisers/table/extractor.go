package table

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
)

// Table holds the primitive fields read from one HTML table.
type Table struct {
	ID     string
	Title  *string
	Header []string
	Rows   []domain.DocumentRow
	Footer *string
}

// Extract reads the first table of an HTML document.
func Extract(r io.Reader) (*Table, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	tbl := findFirst(root, atom.Table)
	if tbl == nil {
		return nil, domain.ErrMissingTable
	}

	id := attr(tbl, "id")
	if id == "" {
		return nil, domain.ErrMissingTableID
	}

	result := &Table{ID: id}

	if caption := findFirst(tbl, atom.Caption); caption != nil {
		title := textContent(caption)
		result.Title = &title
	}

	header, err := extractHeader(tbl)
	if err != nil {
		return nil, err
	}
	result.Header = header

	rows, err := extractRows(tbl)
	if err != nil {
		return nil, err
	}
	result.Rows = rows

	if tfoot := findFirst(tbl, atom.Tfoot); tfoot != nil {
		td := findFirst(findFirst(tfoot, atom.Tr), atom.Td)
		if td == nil {
			return nil, fmt.Errorf("%w: footer has no cell", domain.ErrMalformedTable)
		}
		footer := textContent(td)
		result.Footer = &footer
	}

	return result, nil
}

// extractHeader returns the head row labels, skipping the row label column.
func extractHeader(tbl *html.Node) ([]string, error) {
	tr := findFirst(findFirst(tbl, atom.Thead), atom.Tr)
	if tr == nil {
		return nil, fmt.Errorf("%w: table has no head row", domain.ErrMalformedTable)
	}

	cells := findAll(tr, atom.Th)
	header := make([]string, 0, len(cells))
	for i, th := range cells {
		if i == 0 {
			continue
		}
		header = append(header, strings.TrimSpace(textContent(th)))
	}
	return header, nil
}

// extractRows converts each body row into a label and its numeric values.
func extractRows(tbl *html.Node) ([]domain.DocumentRow, error) {
	tbody := findFirst(tbl, atom.Tbody)
	if tbody == nil {
		return nil, fmt.Errorf("%w: table has no body", domain.ErrMalformedTable)
	}

	trs := findAll(tbody, atom.Tr)
	rows := make([]domain.DocumentRow, 0, len(trs))
	for i, tr := range trs {
		cells := findAll(tr, atom.Td)
		if len(cells) == 0 {
			return nil, fmt.Errorf("%w: row %d has no cells", domain.ErrMalformedTable, i)
		}

		row := domain.DocumentRow{
			Header: strings.TrimSpace(textContent(cells[0])),
			Body:   make([]float64, 0, len(cells)-1),
		}
		for _, td := range cells[1:] {
			value, err := ParseValue(textContent(td))
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			row.Body = append(row.Body, value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseValue converts cell text to a number. A trailing percent sign
// divides the number by 100, so "12%" becomes 0.12. NaN and infinities
// are rejected.
func ParseValue(text string) (float64, error) {
	s := strings.TrimSpace(text)

	percent := strings.HasSuffix(s, "%")
	if percent {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidCellValue, text)
	}

	if percent {
		value /= 100
	}
	return value, nil
}

// findFirst returns the first descendant element of n with the given atom.
func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns all descendant elements of n with the given atom, in document order.
func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == a {
				nodes = append(nodes, c)
			}
			walk(c)
		}
	}
	walk(n)
	return nodes
}

// textContent concatenates all text beneath n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		if p.Type == html.TextNode {
			sb.WriteString(p.Data)
			return
		}
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
