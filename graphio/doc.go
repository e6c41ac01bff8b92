// Package graphio reads graph documents and writes solver reports.
//
// Documents come in two formats, chosen by file extension in Load:
//
// YAML (.yaml, .yml):
//
//	name: petersen
//	nodes: [a, b, c]
//	edges:
//	  - [a, b]
//	  - [b, c]
//
// HCL (.hcl), exactly one graph block:
//
//	graph "petersen" {
//	  nodes = ["a", "b", "c"]
//	  edge {
//	    from = "a"
//	    to   = "b"
//	  }
//	}
//
// Nodes may be omitted; edge endpoints are added implicitly. Document.Graph
// materializes an undirected core.Graph through builder.Literal.
//
// Reports summarize a domset.CoreResult and are written as YAML (WriteYAML)
// or aligned text (WriteText).
package graphio
