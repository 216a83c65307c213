package search

import (
	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"
)

// frontier holds discovered-but-not-expanded node handles.
// pop must only be called when empty reports false.
type frontier interface {
	push(i int)
	pop() int
	empty() bool
}

// lifo pops the most recently pushed handle.
type lifo struct{ s *stack.Stack[int] }

func newLIFO() *lifo { return &lifo{s: stack.New[int]()} }

func (f *lifo) push(i int)  { f.s.Push(i) }
func (f *lifo) pop() int    { return f.s.Pop() }
func (f *lifo) empty() bool { return f.s.Size() == 0 }

// fifo pops the oldest pushed handle.
type fifo struct{ q *queue.Queue[int] }

func newFIFO() *fifo { return &fifo{q: queue.New[int]()} }

func (f *fifo) push(i int)  { f.q.Enqueue(i) }
func (f *fifo) pop() int    { return f.q.Dequeue() }
func (f *fifo) empty() bool { return f.q.Empty() }

// scan is an unordered multiset. pop selects the handle with the smallest key
// by linear scan; on ties the earliest pushed wins. Every copy of the selected
// handle is removed.
type scan struct {
	items []int
	key   func(i int) float64
}

func newScan(key func(i int) float64) *scan { return &scan{key: key} }

func (f *scan) push(i int)  { f.items = append(f.items, i) }
func (f *scan) empty() bool { return len(f.items) == 0 }

func (f *scan) pop() int {
	best, bestKey := 0, f.key(f.items[0])
	for j := 1; j < len(f.items); j++ {
		// strict: the first minimum found is kept
		if k := f.key(f.items[j]); k < bestKey {
			best, bestKey = j, k
		}
	}
	sel := f.items[best]

	kept := f.items[:0]
	for _, i := range f.items {
		if i != sel {
			kept = append(kept, i)
		}
	}
	f.items = kept

	return sel
}
