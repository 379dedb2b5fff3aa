// SPDX-License-Identifier: MIT

// Package render formats lvstride CLI output: go-pretty tables for data,
// colored status lines and humanized counts.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/lvstride/internal/telemetry"
)

// Renderer writes tables and status lines to one writer.
type Renderer struct {
	out   io.Writer
	ok    *color.Color
	fail  *color.Color
	muted *color.Color
}

// New returns a Renderer; useColor forces ANSI colors on or off regardless
// of whether out is a terminal.
func New(out io.Writer, useColor bool) *Renderer {
	r := &Renderer{
		out:   out,
		ok:    color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
		muted: color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{r.ok, r.fail, r.muted} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// OK prints a green status line.
func (r *Renderer) OK(format string, args ...any) {
	r.ok.Fprintf(r.out, format+"\n", args...)
}

// Fail prints a red status line.
func (r *Renderer) Fail(format string, args ...any) {
	r.fail.Fprintf(r.out, format+"\n", args...)
}

// Note prints a dimmed line.
func (r *Renderer) Note(format string, args ...any) {
	r.muted.Fprintf(r.out, format+"\n", args...)
}

// newTable returns a table writer in the house style.
func newTable(header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(header)
	return tw
}

// Apply renders a per-index view of a kernel run. mask may be nil.
func (r *Renderer) Apply(op string, x []float64, mask []uint8, y []float64) {
	tw := newTable(table.Row{"i", "x", "mask", op})
	for i := range x {
		m := "-"
		if mask != nil {
			m = strconv.Itoa(int(mask[i]))
		}
		tw.AppendRow(table.Row{i, x[i], m, y[i]})
	}
	tw.AppendFooter(table.Row{"", "", "", humanize.Comma(int64(len(x))) + " elements"})
	fmt.Fprintln(r.out, tw.Render())
}

// RingEvent is one push observed by the ring command.
type RingEvent struct {
	Value   string
	Evicted string
	Dropped bool
}

// Ring renders the push log of a circular buffer.
func (r *Renderer) Ring(events []RingEvent) {
	tw := newTable(table.Row{"#", "push", "evicted"})
	for i, e := range events {
		ev := "-"
		if e.Dropped {
			ev = e.Evicted
		}
		tw.AppendRow(table.Row{humanize.Ordinal(i + 1), e.Value, ev})
	}
	fmt.Fprintln(r.out, tw.Render())
}

// Adjacency renders one row per vertex with its successors.
func (r *Renderer) Adjacency(list [][]int) {
	tw := newTable(table.Row{"vertex", "out", "successors"})
	edges := 0
	for i, row := range list {
		tw.AppendRow(table.Row{i, len(row), fmt.Sprint(row)})
		edges += len(row)
	}
	tw.AppendFooter(table.Row{
		humanize.Comma(int64(len(list))) + " vertices",
		humanize.Comma(int64(edges)) + " edges",
		"",
	})
	fmt.Fprintln(r.out, tw.Render())
}

// Metrics renders a counter snapshot.
func (r *Renderer) Metrics(samples []telemetry.Sample) {
	tw := newTable(table.Row{"metric", "value"})
	for _, s := range samples {
		tw.AppendRow(table.Row{s.Name, humanize.Comma(int64(s.Value))})
	}
	fmt.Fprintln(r.out, tw.Render())
}
