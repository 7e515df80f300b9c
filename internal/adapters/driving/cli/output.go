package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

// emptyValue is shown for absent optional fields.
const emptyValue = "-"

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeTable writes rows under headers. Terminals get a bordered lipgloss
// table, anything else a tab-aligned plain listing.
func writeTable(w io.Writer, headers []string, rows [][]string) error {
	if isTerminal(w) {
		_, err := fmt.Fprintln(w, renderTable(DefaultStyles(), headers, rows))
		return err
	}
	return writePlainTable(w, headers, rows)
}

// renderTable renders a styled table.
func renderTable(s *Styles, headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			return s.Cell
		})
	return t.Render()
}

func writePlainTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// paint renders text with style when w is a terminal.
func paint(w io.Writer, style lipgloss.Style, text string) string {
	if isTerminal(w) {
		return style.Render(text)
	}
	return text
}

// title renders a section heading.
func title(w io.Writer, text string) string {
	return paint(w, DefaultStyles().Title, text)
}

// orEmpty dereferences s, or returns emptyValue when s is nil.
func orEmpty(s *string) string {
	if s == nil {
		return emptyValue
	}
	return *s
}

// formatParams renders rule parameters as sorted key=value pairs.
func formatParams(params map[string]any) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+formatParam(params[key]))
	}
	return strings.Join(parts, " ")
}

func formatParam(value any) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
