// SPDX-License-Identifier: MIT
//
// frontier.go - min-heap of pending partial solutions.
//
// Order: lower bound ascending, then fewer uncovered nodes, then insertion
// order. The second key pops dominated states ahead of equally bounded
// undominated ones.

package domset

import "container/heap"

type frontierItem struct {
	ps  *PartialSolution
	seq uint64
}

type frontierPQ []frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.ps.lb != b.ps.lb {
		return a.ps.lb < b.ps.lb
	}
	if a.ps.uncovered != b.ps.uncovered {
		return a.ps.uncovered < b.ps.uncovered
	}

	return a.seq < b.seq
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = frontierItem{}
	*pq = old[:n-1]

	return it
}

// Frontier is the best-first open list. The zero value is an empty frontier.
type Frontier struct {
	pq  frontierPQ
	seq uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	f := &Frontier{}
	heap.Init(&f.pq)

	return f
}

// Push inserts ps keyed by its lower bound. nil is ignored.
// Complexity: O(log n).
func (f *Frontier) Push(ps *PartialSolution) {
	if ps == nil {
		return
	}
	heap.Push(&f.pq, frontierItem{ps: ps, seq: f.seq})
	f.seq++
}

// Pop removes and returns the minimum entry; ok is false when empty.
// Complexity: O(log n).
func (f *Frontier) Pop() (ps *PartialSolution, ok bool) {
	if len(f.pq) == 0 {
		return nil, false
	}

	return heap.Pop(&f.pq).(frontierItem).ps, true
}

// Peek returns the minimum entry without removing it.
func (f *Frontier) Peek() (ps *PartialSolution, ok bool) {
	if len(f.pq) == 0 {
		return nil, false
	}

	return f.pq[0].ps, true
}

// Len returns the number of pending entries.
func (f *Frontier) Len() int { return len(f.pq) }
