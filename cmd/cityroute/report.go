// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/route"
)

// pathSeparator joins city names when a path is printed.
const pathSeparator = " --> "

// styles is the output palette, bound to the renderer of one writer so
// colour is dropped when that writer is not a terminal.
type styles struct {
	heading lipgloss.Style
	value   lipgloss.Style
	path    lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("170")),
		value:   r.NewStyle().Foreground(lipgloss.Color("42")),
		path:    r.NewStyle().Foreground(lipgloss.Color("75")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("241")),
		warning: r.NewStyle().Foreground(lipgloss.Color("214")),
		failure: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// query runs one lookup by name and logs it under a fresh query id.
func query(f *route.Finder, from, to string, speed float64, logger *log.Logger) (*route.Result, error) {
	id := uuid.New().String()
	start := time.Now()

	res, err := f.FindByName(from, to, speed)
	if res == nil {
		logger.Printf("component=cityroute action=query query_id=%s from=%s to=%s error=%q", id, from, to, err)
		return nil, err
	}
	logger.Printf("component=cityroute action=query query_id=%s from=%s to=%s reachable=%t distance=%d paths=%d elapsed=%s",
		id, from, to, res.Reachable, res.Distance, len(res.Paths), time.Since(start))
	if err != nil {
		logger.Printf("component=cityroute action=estimate query_id=%s speed=%v error=%q", id, speed, err)
	}

	return res, err
}

// writeReport prints the outcome of one query. err is the error returned
// alongside res; a nil res means the query could not run at all.
func writeReport(w io.Writer, st styles, g *core.Graph, res *route.Result, err error) {
	if res == nil {
		fmt.Fprintln(w, st.failure.Render("Error: "+err.Error()))
		return
	}

	from, _ := g.Name(res.Source)
	to, _ := g.Name(res.Destination)
	if !res.Reachable {
		fmt.Fprintln(w, st.warning.Render(fmt.Sprintf("No path exists between %s and %s.", from, to)))
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.heading.Render(fmt.Sprintf("Shortest Distance from %s to %s = %d km", from, to, res.Distance)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.heading.Render("All shortest paths:"))
	for _, p := range res.Paths {
		fmt.Fprintln(w, st.path.Render(p.Format(g, pathSeparator)))
	}

	fmt.Fprintln(w)
	speed := strconv.FormatFloat(res.Speed, 'g', -1, 64)
	if errors.Is(err, route.ErrInvalidRate) {
		fmt.Fprintln(w, st.warning.Render(fmt.Sprintf("Estimated Travel Time unavailable (at %s km/hr): speed must be positive", speed)))
		return
	}
	fmt.Fprintln(w, st.value.Render(fmt.Sprintf("Estimated Travel Time (at %s km/hr): %.2f hours", speed, res.Hours)))
}

// writeCities prints the numbered city list.
func writeCities(w io.Writer, st styles, g *core.Graph) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.heading.Render("List of Cities:"))
	for _, n := range g.Nodes() {
		fmt.Fprintln(w, st.muted.Render(fmt.Sprintf("%d. %s", n.ID+1, n.Name)))
	}
}
