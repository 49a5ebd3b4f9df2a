// Package report prints graph statistics, paths and distance tables to a
// terminal, styled with lipgloss.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dijkstra"
)

// Palette
var (
	ColorTitle   = lipgloss.Color("#2CD7C7")
	ColorLabel   = lipgloss.Color("#20B9B4")
	ColorMuted   = lipgloss.Color("#2C4A54")
	ColorWarning = lipgloss.Color("#F4D03F")
)

// Infinity is how unreachable distances are printed.
const Infinity = "∞"

// styles holds the render functions a Printer applies; plain mode uses identity.
type styles struct {
	title func(...string) string
	label func(...string) string
	muted func(...string) string
	warn  func(...string) string
}

func styledSet() styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(ColorTitle).Render,
		label: lipgloss.NewStyle().Foreground(ColorLabel).Render,
		muted: lipgloss.NewStyle().Foreground(ColorMuted).Render,
		warn:  lipgloss.NewStyle().Foreground(ColorWarning).Render,
	}
}

func plainSet() styles {
	id := func(s ...string) string { return strings.Join(s, " ") }
	return styles{title: id, label: id, muted: id, warn: id}
}

// Option configures a Printer.
type Option func(*Printer)

// WithPlain disables all styling.
func WithPlain() Option {
	return func(p *Printer) {
		p.st = plainSet()
	}
}

// Printer writes human-readable reports to an io.Writer.
type Printer struct {
	w  io.Writer
	st styles
}

// New returns a Printer writing to w.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w, st: styledSet()}
	for _, fn := range opts {
		fn(p)
	}
	return p
}

// Stats prints vertex and edge counts, total weight, average degree and the
// degree of every vertex in ascending ID order.
func (p *Printer) Stats(title string, s core.GraphStats) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.st.title("== "+title+" =="))
	fmt.Fprintf(&b, "%s %d\n", p.st.label("nodes:"), s.VertexCount)
	fmt.Fprintf(&b, "%s %d\n", p.st.label("edges:"), s.EdgeCount)
	fmt.Fprintf(&b, "%s %s\n", p.st.label("total weight:"), FormatWeight(s.TotalWeight))
	fmt.Fprintf(&b, "%s %.2f\n", p.st.label("average degree:"), s.AverageDegree)
	fmt.Fprintf(&b, "%s\n", p.st.label("degrees:"))

	ids := make([]string, 0, len(s.Degrees))
	for id := range s.Degrees {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	width := maxWidth(ids)
	for _, id := range ids {
		fmt.Fprintf(&b, "  %-*s %d\n", width, id, s.Degrees[id])
	}

	return p.flush(&b)
}

// Path prints one search result line. A nil path prints "no path".
func (p *Printer) Path(label string, path core.Path, cost float64) error {
	var b strings.Builder
	if !path.Found() {
		fmt.Fprintf(&b, "%s %s\n", p.st.label(label+":"), p.st.warn(path.String()))
		return p.flush(&b)
	}
	fmt.Fprintf(&b, "%s %s %s\n",
		p.st.label(label+":"),
		path.String(),
		p.st.muted(fmt.Sprintf("(%d hops, cost %s)", path.Hops(), FormatWeight(cost))),
	)

	return p.flush(&b)
}

// Distances prints a distance table ordered by increasing distance.
// Unreachable vertices print as ∞.
func (p *Printer) Distances(source string, dist dijkstra.DistanceMap) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.st.title("distances from "+source))

	rows := dist.Sorted()
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	width := maxWidth(ids)
	for _, r := range rows {
		if math.IsInf(r.Distance, 1) {
			fmt.Fprintf(&b, "  %-*s %s\n", width, r.ID, p.st.warn(Infinity))
			continue
		}
		fmt.Fprintf(&b, "  %-*s %s\n", width, r.ID, FormatWeight(r.Distance))
	}

	return p.flush(&b)
}

// FormatWeight renders a weight without trailing zeros; +Inf renders as ∞.
func FormatWeight(w float64) string {
	if math.IsInf(w, 1) {
		return Infinity
	}
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func (p *Printer) flush(b *strings.Builder) error {
	if _, err := io.WriteString(p.w, b.String()); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	return nil
}

func maxWidth(ids []string) int {
	w := 0
	for _, id := range ids {
		if n := lipgloss.Width(id); n > w {
			w = n
		}
	}
	return w
}
