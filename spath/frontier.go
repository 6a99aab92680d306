package spath

import "container/heap"

// frontierEntry is a node index and the tentative distance it had when the
// entry was pushed.
type frontierEntry struct {
	node int
	dist float64
}

// frontier is a min-heap of entries ordered by distance. Improving the
// distance of a node pushes a new entry; the older entries of that node become
// stale and are skipped when popped.
type frontier []frontierEntry

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierEntry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]
	return e
}

func (f *frontier) push(node int, dist float64) {
	heap.Push(f, frontierEntry{node: node, dist: dist})
}

func (f *frontier) pop() frontierEntry {
	return heap.Pop(f).(frontierEntry)
}

// clear empties the frontier and keeps its capacity.
func (f *frontier) clear() {
	*f = (*f)[:0]
}
