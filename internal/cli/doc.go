// SPDX-License-Identifier: MIT

// Package cli turns command-line arguments into a validated Config and runs
// one solve: load or generate a graph, search for a minimum dominating set,
// verify it and render a report.
//
// Exit codes are carried by ExitError: 2 for usage errors, 1 for everything
// that fails after arguments were accepted.
package cli
