// Package renderer turns moneytracker views into markdown documents.
//
// Every function returns a complete document, ready to be printed as is or
// rendered for a terminal.
package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/date"
)

// mdRenderer accumulates markdown, amounts are formatted in cur.
type mdRenderer struct {
	*strings.Builder
	cur string
}

func newRenderer(cur string) *mdRenderer {
	return &mdRenderer{Builder: &strings.Builder{}, cur: cur}
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *mdRenderer) amount(a moneytracker.Amount) string { return a.Format(r.cur) }

func (r *mdRenderer) signed(a moneytracker.Amount) string { return a.SignedFormat(r.cur) }

// table writes a markdown table, the first column left aligned and the
// others right aligned.
func (r *mdRenderer) table(header []string, rows [][]string) {
	r.Printf("| %s |\n", strings.Join(header, " | "))
	align := make([]string, len(header))
	for i := range align {
		align[i] = "---:"
	}
	align[0] = ":---"
	r.Printf("|%s|\n", strings.Join(align, "|"))
	for _, row := range rows {
		r.Printf("| %s |\n", strings.Join(row, " | "))
	}
	r.Printf("\n")
}

// monthTitle returns "January 2024" for "2024-01".
func monthTitle(r date.Range) string {
	return fmt.Sprintf("%s %d", r.From.Month(), r.From.Year())
}

// dayTitle returns "Fri 05" for 2024-01-05.
func dayTitle(d date.Date) string {
	return fmt.Sprintf("%s %02d", d.Weekday().String()[:3], d.Day())
}

// cell escapes text so it can be used in a table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// shortID returns the prefix of id used to refer to records on the command line.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func monthName(m time.Month) string { return m.String()[:3] }
