// Package report renders scores, crib choices and score histograms for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/cribbage/cribbage"
	"github.com/lox/cribbage/internal/analyzer"
)

// Printer writes styled reports to a terminal or any writer.
type Printer struct {
	w     io.Writer
	width int

	header   lipgloss.Style
	hand     lipgloss.Style
	score    lipgloss.Style
	bar      lipgloss.Style
	category lipgloss.Style
	errStyle lipgloss.Style
}

// New creates a printer. width is the histogram width in columns; with color
// false all output is plain ASCII.
func New(w io.Writer, width int, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		// w may be a buffer bound for the terminal
		r.SetColorProfile(lipgloss.ColorProfile())
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		w:        w,
		width:    width,
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hand:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		score:    r.NewStyle().Foreground(lipgloss.Color("10")),
		bar:      r.NewStyle().Foreground(lipgloss.Color("12")),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		errStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Result prints the summary line for an analyzed input, followed by the
// best-keep statistics and histogram for six card deals.
func (p *Printer) Result(r analyzer.Result) {
	if r.Kind == analyzer.KindCrib {
		_, _ = fmt.Fprintln(p.w, p.BestLine(*r.Best))
		_, _ = fmt.Fprint(p.w, p.Histogram(r.Best.Distribution))
	}
	_, _ = fmt.Fprintln(p.w, p.hand.Render(r.Summary()))
}

// Error prints an input error without ending the program.
func (p *Printer) Error(err error) {
	_, _ = fmt.Fprintln(p.w, p.errStyle.Render(err.Error()))
}

// BestLine describes the winning keep, e.g.
// "The best possible: [5H, 10S, JS, QS] / 5S with high: 18, low: 6, and mean 9.8."
func (p *Printer) BestLine(best cribbage.CribResult) string {
	return fmt.Sprintf("The best possible: %s / %s with high: %d, low: %d, and mean %3.1f.",
		best.Keep, best.BestStarter, best.High, best.Low, best.Mean())
}

// Histogram draws one row per score, in ascending order, scaled so the most
// common score fills the available width.
func (p *Printer) Histogram(d cribbage.Distribution) string {
	scores := d.Scores()
	if len(scores) == 0 {
		return ""
	}

	longest := 0
	for _, s := range scores {
		longest = max(longest, len(fmt.Sprint(s)))
	}
	graphWidth := p.width - longest - 6
	_, widest := d.MostCommon()
	scale := float64(graphWidth) / float64(widest)
	total := float64(d.Total())

	var b strings.Builder
	for _, s := range scores {
		n := d[s]
		label := fmt.Sprintf("%2d: (%4.1f%%) ", s, 100*float64(n)/total)
		bar := strings.Repeat("*", int(float64(n)*scale))
		b.WriteString(p.score.Render(label))
		b.WriteString(p.bar.Render(bar))
		b.WriteString("\n")
	}
	return b.String()
}

// Breakdown prints a category table for a scored hand.
func (p *Printer) Breakdown(r analyzer.Result) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(tw, "%s\t%s\n", p.header.Render("category"), p.header.Render("points"))
	rows := []struct {
		name   string
		points int
	}{
		{"flush", r.Breakdown.Flush},
		{"pairs", r.Breakdown.Pairs},
		{"fifteens", r.Breakdown.Fifteens},
		{"runs", r.Breakdown.Runs},
		{"nobs", r.Breakdown.Nobs},
	}
	for _, row := range rows {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", p.category.Render(row.name), p.score.Render(fmt.Sprint(row.points)))
	}
	_, _ = fmt.Fprintf(tw, "%s\t%s\n", p.header.Render("total"), p.score.Render(fmt.Sprint(r.Breakdown.Total())))
	_ = tw.Flush()
}

// Candidates prints every keep that was tried.
func (p *Printer) Candidates(best cribbage.CribResult) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		p.header.Render("keep"),
		p.header.Render("crib"),
		p.header.Render("high"),
		p.header.Render("low"),
		p.header.Render("mean"))

	for _, c := range best.Candidates {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.hand.Render(c.Keep.Cards().Pretty()),
			p.hand.Render(c.Crib.Cards().Pretty()),
			p.score.Render(fmt.Sprint(c.High)),
			p.score.Render(fmt.Sprint(c.Low)),
			p.score.Render(fmt.Sprintf("%.1f", c.Mean())))
	}
	_ = tw.Flush()
}
