// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/domset/builder"
	"github.com/katalvlaran/domset/core"
	"github.com/katalvlaran/domset/domset"
	"github.com/katalvlaran/domset/graphio"
	"github.com/katalvlaran/domset/internal/ctxlog"
)

// Run executes one solve described by cfg. The report goes to stdout, logs
// to stderr. Errors other than *ExitError map to ExitFailure.
func Run(ctx context.Context, cfg *Config, stdout, stderr io.Writer) error {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	name, g, err := loadGraph(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("Graph ready.", "graph", name, "nodes", g.VertexCount(), "edges", g.EdgeCount())

	cg, err := domset.FromCore(g)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	opts := []domset.Option{
		domset.WithContext(ctx),
		domset.WithBound(cfg.Bound),
		domset.WithMaxExpansions(cfg.MaxExpansions),
		domset.WithSplitComponents(cfg.Split),
	}
	if cfg.Trace {
		opts = append(opts, traceOptions(ctx, cg, cfg.Split)...)
	}

	start := time.Now()
	res, err := domset.SolveCore(g, opts...)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("solve %s: %v", name, err)}
	}
	elapsed := time.Since(start)

	missing, err := domset.Undominated(cg, res.Set)
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	if len(missing) > 0 {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("solve %s: result leaves %v undominated", name, cg.Labels(missing))}
	}
	logger.Info("Solved.", "graph", name, "size", res.Size, "expanded", res.Expanded, "elapsed", elapsed)

	report := graphio.NewReport(name, g, res, cfg.Bound, elapsed)
	if cfg.Output == OutputYAML {
		err = graphio.WriteYAML(stdout, report)
	} else {
		err = graphio.WriteText(stdout, report)
	}
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("write report: %v", err)}
	}

	return nil
}

// loadGraph reads cfg.GraphPath or runs cfg.Gen.
func loadGraph(ctx context.Context, cfg *Config) (string, *core.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	if cfg.Gen != "" {
		gen, err := parseGenerator(cfg.Gen)
		if err != nil {
			return "", nil, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		logger.Debug("Generating graph.", "spec", gen.name)
		g, err := builder.BuildGraph(nil, gen.opts, gen.cons)
		if err != nil {
			return "", nil, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("generate %s: %v", gen.name, err)}
		}
		return gen.name, g, nil
	}

	logger.Debug("Loading graph document.", "path", cfg.GraphPath)
	doc, err := graphio.Load(cfg.GraphPath)
	if err != nil {
		return "", nil, &ExitError{Code: ExitFailure, Message: err.Error()}
	}
	g, err := doc.Graph()
	if err != nil {
		return "", nil, &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	return doc.Name, g, nil
}

// traceOptions logs the search at debug level. Component solves number
// their nodes locally, so labels are only attached for whole-graph solves.
func traceOptions(ctx context.Context, cg *domset.CoreGraph, split bool) []domset.Option {
	logger := ctxlog.FromContext(ctx)
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return nil
	}

	label := func(n domset.NodeID) string {
		if split {
			return fmt.Sprint(int(n))
		}
		return cg.Label(n)
	}

	return []domset.Option{
		domset.WithOnExpand(func(ps *domset.PartialSolution, branch domset.NodeID) {
			logger.Debug("Expand.",
				"s", labelsOf(ps.S(), label),
				"t", labelsOf(ps.T(), label),
				"uncovered", ps.UncoveredCount(),
				"max_w", ps.MaxW(),
				"lower_bound", ps.LowerBound(),
				"branch", label(branch))
		}),
		domset.WithOnSolved(func(ps *domset.PartialSolution) {
			logger.Debug("Dominated.", "s", labelsOf(ps.S(), label), "lower_bound", ps.LowerBound())
		}),
	}
}

func labelsOf(ns []domset.NodeID, label func(domset.NodeID) string) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = label(n)
	}

	return out
}
