// SPDX-License-Identifier: MIT

package builder

// Method tags prefix constructor errors ("Cycle: n=2 < min=3: ...").
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
	MethodLiteral           = "Literal"
)

// CenterVertexID is the fixed hub identifier used by Star and Wheel.
const CenterVertexID = "Center"

// Minimum sizes per topology.
const (
	// MinCycleNodes: a ring without loops or multi-edges needs 3 vertices.
	MinCycleNodes = 3
	// MinPathNodes: a path of fewer than 2 vertices has no edges.
	MinPathNodes = 2
	// MinStarNodes: hub plus one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-cycle rim plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 is a valid (edgeless) complete graph.
	MinCompleteNodes = 1
	// MinPartitionSize: each side of K_{m,n} needs at least one vertex.
	MinPartitionSize = 1
	// MinGridDim: a 1×1 grid is a single vertex and still valid.
	MinGridDim = 1
	// MinRandomNodes applies to RandomSparse and RandomRegular.
	MinRandomNodes = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// gridIDFmt renders grid coordinates as "r,c".
const gridIDFmt = "%d,%d"

// maxStubMatchingAttempts bounds RandomRegular retries before ErrConstructFailed.
const maxStubMatchingAttempts = 16
