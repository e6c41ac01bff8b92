// SPDX-License-Identifier: MIT
//
// helpers.go - vertex/edge emission shared by the impl_*.go constructors.
// Every helper wraps core errors with the calling constructor's method tag.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// sequentialIDs returns cfg.idFn(from) .. cfg.idFn(to-1) in index order.
func sequentialIDs(cfg builderConfig, from, to int) []string {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		ids = append(ids, cfg.idFn(i))
	}

	return ids
}

// addVertices inserts ids in order. core.AddVertex is idempotent, so
// re-running a constructor on the same graph adds nothing new.
func addVertices(g *core.Graph, method string, ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// link adds u-v. On a directed graph the reverse arc v→u is emitted too, so
// every generated topology stays symmetric. An existing u-v pair is skipped
// unless the graph is a multigraph.
func link(g *core.Graph, method, u, v string) error {
	if err := linkOne(g, method, u, v); err != nil {
		return err
	}
	if g.Directed() && u != v {
		return linkOne(g, method, v, u)
	}

	return nil
}

func linkOne(g *core.Graph, method, u, v string) error {
	if !g.Multigraph() && g.HasEdge(u, v) {
		return nil
	}
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}

	return nil
}

// linkAll connects every unordered pair of ids, i<j, in index order.
func linkAll(g *core.Graph, method string, ids []string) error {
	var i, j int
	for i = 0; i < len(ids); i++ {
		for j = i + 1; j < len(ids); j++ {
			if err := link(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
