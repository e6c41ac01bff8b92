// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/domset/core"
	"github.com/katalvlaran/domset/domset"
)

// Report is the rendered outcome of one solve.
type Report struct {
	Graph      string   `yaml:"graph"`
	Nodes      int      `yaml:"nodes"`
	Edges      int      `yaml:"edges"`
	Components int      `yaml:"components"`
	Dominators []string `yaml:"dominators"`
	Size       int      `yaml:"size"`
	Stats      Stats    `yaml:"stats"`
}

// Stats mirrors the search counters of domset.Result.
type Stats struct {
	Expanded    int     `yaml:"expanded"`
	Generated   int     `yaml:"generated"`
	Pruned      int     `yaml:"pruned"`
	MaxFrontier int     `yaml:"max_frontier"`
	RootBound   float64 `yaml:"root_bound"`
	Bound       string  `yaml:"bound"`
	Elapsed     string  `yaml:"elapsed,omitempty"`
}

// NewReport summarizes res for graph g named name.
func NewReport(name string, g *core.Graph, res *domset.CoreResult, bound domset.BoundAlgo, elapsed time.Duration) *Report {
	r := &Report{
		Graph:      name,
		Nodes:      g.VertexCount(),
		Edges:      g.EdgeCount(),
		Components: res.Components,
		Dominators: append([]string{}, res.Labels...),
		Size:       res.Size,
		Stats: Stats{
			Expanded:    res.Expanded,
			Generated:   res.Generated,
			Pruned:      res.Pruned,
			MaxFrontier: res.MaxFrontier,
			RootBound:   res.RootBound,
			Bound:       bound.String(),
		},
	}
	if elapsed > 0 {
		r.Stats.Elapsed = elapsed.Round(time.Microsecond).String()
	}

	return r
}

// WriteYAML encodes r as a YAML document with two-space indentation.
func WriteYAML(w io.Writer, r *Report) error {
	return encodeYAML(w, r)
}

// WriteText renders r as aligned "key: value" lines.
func WriteText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	rows := [][2]string{
		{"graph", r.Graph},
		{"nodes", fmt.Sprint(r.Nodes)},
		{"edges", fmt.Sprint(r.Edges)},
		{"components", fmt.Sprint(r.Components)},
		{"dominators", "{" + strings.Join(r.Dominators, ", ") + "}"},
		{"size", fmt.Sprint(r.Size)},
		{"bound", r.Stats.Bound},
		{"root bound", fmt.Sprintf("%.3f", r.Stats.RootBound)},
		{"expanded", fmt.Sprint(r.Stats.Expanded)},
		{"generated", fmt.Sprint(r.Stats.Generated)},
		{"pruned", fmt.Sprint(r.Stats.Pruned)},
		{"max frontier", fmt.Sprint(r.Stats.MaxFrontier)},
	}
	if r.Stats.Elapsed != "" {
		rows = append(rows, [2]string{"elapsed", r.Stats.Elapsed})
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}

	return tw.Flush()
}
