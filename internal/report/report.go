// Package report renders solve results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"aoc2021/internal/puzzle"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerColor = lipgloss.Color("#FFC107") // gold star yellow
	silverColor = lipgloss.Color("#C0C0C0")
	goldColor   = lipgloss.Color("#FFD700")
	mutedColor  = lipgloss.Color("#6C7A89")
)

// Options control rendering.
type Options struct {
	Plain  bool // no styling, byte-for-byte stable output
	Timing bool // append the solve time to each header
}

// Renderer writes results to an output stream.
type Renderer struct {
	w    io.Writer
	opts Options

	header lipgloss.Style
	silver lipgloss.Style
	gold   lipgloss.Style
	muted  lipgloss.Style
}

// New creates a renderer for w. Color support is detected from w itself.
func New(w io.Writer, opts Options) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		w:      w,
		opts:   opts,
		header: lr.NewStyle().Bold(true).Foreground(headerColor),
		silver: lr.NewStyle().Foreground(silverColor),
		gold:   lr.NewStyle().Bold(true).Foreground(goldColor),
		muted:  lr.NewStyle().Foreground(mutedColor),
	}
}

// Render writes every result in order.
func (r *Renderer) Render(results []puzzle.Result) error {
	for _, res := range results {
		if err := r.RenderOne(res); err != nil {
			return err
		}
	}
	return nil
}

// RenderOne writes the banner and both answers of one day:
//
//	--- Day 1: Sonar Sweep ---
//		silver - increases 7
//		gold   - increases 5
func (r *Renderer) RenderOne(res puzzle.Result) error {
	var b strings.Builder
	header := res.Header()
	if r.opts.Plain {
		b.WriteString(header)
	} else {
		b.WriteString(r.header.Render(header))
	}
	if r.opts.Timing {
		t := fmt.Sprintf(" (%s)", res.Elapsed)
		if !r.opts.Plain {
			t = r.muted.Render(t)
		}
		b.WriteString(t)
	}
	b.WriteByte('\n')

	silver, gold := "silver", "gold  "
	if !r.opts.Plain {
		silver, gold = r.silver.Render(silver), r.gold.Render(gold)
	}
	fmt.Fprintf(&b, "\t%s - %s\n", silver, res.Silver)
	fmt.Fprintf(&b, "\t%s - %s\n", gold, res.Gold)

	_, err := io.WriteString(r.w, b.String())
	return err
}

// List writes one "day N  title" line per registered solver.
func List(w io.Writer, registry *puzzle.Registry) error {
	for _, day := range registry.Days() {
		s, err := registry.Get(day)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "day %2d  %s\n", day, s.Title()); err != nil {
			return err
		}
	}
	return nil
}
