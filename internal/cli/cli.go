// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/domset/domset"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// ExitError is an error with the process exit code it maps to.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...interface{}) error {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// Config is the validated result of Parse.
type Config struct {
	// GraphPath is a .yaml/.yml/.hcl graph document. Exclusive with Gen.
	GraphPath string
	// Gen is a generator spec such as "cycle:7" or "random:30:0.1:42".
	Gen string

	Bound         domset.BoundAlgo
	MaxExpansions int
	Timeout       time.Duration
	Trace         bool
	Split         bool

	Output    string
	LogLevel  string
	LogFormat string
}

// Parse processes command-line arguments. It returns the Config, whether the
// program should exit cleanly (help or no input), or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	fs := flag.NewFlagSet("domset", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, `
domset - exact minimum dominating set by best-first branch-and-bound.

Usage:
  domset [options] [GRAPH_PATH]
  domset [options] -gen SPEC

Arguments:
  GRAPH_PATH
    A .yaml, .yml or .hcl graph document.

Generators (-gen):
  %s

Options:
`, strings.Join(generatorUsage(), "\n  "))
		fs.PrintDefaults()
	}

	graphFlag := fs.String("graph", "", "Path to the graph document.")
	gFlag := fs.String("g", "", "Path to the graph document (shorthand).")
	genFlag := fs.String("gen", "", "Generate the graph instead of loading it, e.g. 'grid:3x4'.")
	boundFlag := fs.String("bound", domset.BoundFractional.String(), "Lower bound: 'fractional', 'ceil' or 'none'.")
	maxExpFlag := fs.Int("max-expansions", 0, "Abort after this many expansions. 0 is unlimited.")
	timeoutFlag := fs.Duration("timeout", 0, "Abort the search after this long. 0 is unlimited.")
	traceFlag := fs.Bool("trace", false, "Log every expanded partial solution at debug level.")
	splitFlag := fs.Bool("split", false, "Solve each connected component separately.")
	outputFlag := fs.String("output", OutputText, "Report format. Options: 'text' or 'yaml'.")
	logFormatFlag := fs.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := fs.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	path := *graphFlag
	if path == "" {
		path = *gFlag
	}
	if path == "" && fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		return nil, false, usageError("unexpected arguments: %v", fs.Args()[1:])
	}

	if path == "" && *genFlag == "" {
		fs.Usage()
		return nil, true, nil
	}
	if path != "" && *genFlag != "" {
		return nil, false, usageError("a graph path and -gen are mutually exclusive")
	}
	if *genFlag != "" {
		if _, err := parseGenerator(*genFlag); err != nil {
			return nil, false, usageError("invalid -gen: %v", err)
		}
	}

	bound, err := domset.ParseBound(strings.ToLower(*boundFlag))
	if err != nil {
		return nil, false, usageError("invalid bound: must be 'fractional', 'ceil' or 'none'")
	}
	if *maxExpFlag < 0 {
		return nil, false, usageError("invalid max-expansions: must not be negative")
	}
	if *timeoutFlag < 0 {
		return nil, false, usageError("invalid timeout: must not be negative")
	}

	out := strings.ToLower(*outputFlag)
	if out != OutputText && out != OutputYAML {
		return nil, false, usageError("invalid output: must be 'text' or 'yaml'")
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &Config{
		GraphPath:     path,
		Gen:           *genFlag,
		Bound:         bound,
		MaxExpansions: *maxExpFlag,
		Timeout:       *timeoutFlag,
		Trace:         *traceFlag,
		Split:         *splitFlag,
		Output:        out,
		LogLevel:      logLevel,
		LogFormat:     logFormat,
	}, false, nil
}
