// SPDX-License-Identifier: MIT

package domset

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Describe writes the state report for ps: S, T, w of every undecided node,
// maxW, the lower bound and the branching node. label renders NodeIDs; nil
// prints them as integers.
//
//	S = [a]
//	T = []
//	b = 2
//	c = 3
//	max_w = 3
//	lower_bound = 2.333
//	max_w_node = c
func (ps *PartialSolution) Describe(w io.Writer, label func(NodeID) string) error {
	if label == nil {
		label = func(n NodeID) string { return strconv.Itoa(int(n)) }
	}
	list := func(ids []NodeID) string {
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = label(id)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "S = %s\n", list(ps.S()))
	fmt.Fprintf(&b, "T = %s\n", list(ps.T()))
	for p, wp := range ps.w {
		if wp >= 0 {
			fmt.Fprintf(&b, "%s = %d\n", label(ps.snap.nodes[p]), wp)
		}
	}
	fmt.Fprintf(&b, "max_w = %d\n", ps.maxW)
	fmt.Fprintf(&b, "lower_bound = %s\n", strconv.FormatFloat(ps.lb, 'g', 4, 64))
	if n, ok := ps.MaxWNode(); ok {
		fmt.Fprintf(&b, "max_w_node = %s\n", label(n))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// String returns a one-line summary: S, T, |uncovered| and the lower bound.
func (ps *PartialSolution) String() string {
	return fmt.Sprintf("S=%v T=%v uncovered=%d lb=%s",
		ps.S(), ps.T(), ps.uncovered, strconv.FormatFloat(ps.lb, 'g', 4, 64))
}
