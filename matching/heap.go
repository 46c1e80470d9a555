// MaxHeap: the scored max-priority queue of the matching toolkit.
package matching

import "container/heap"

// MaxHeap is a binary max-heap of (value, score) entries. Insert and
// RemoveMax are O(log n). Ties between equal scores are broken by
// insertion order (first inserted wins), so consumers stay
// deterministic.
type MaxHeap[T any] struct {
	items heapSlice[T]
	seq   uint64 // insertion counter for stable tie-breaks
}

// NewMaxHeap returns an empty heap.
func NewMaxHeap[T any]() *MaxHeap[T] {
	return &MaxHeap[T]{}
}

// Len returns the number of entries.
func (h *MaxHeap[T]) Len() int { return len(h.items) }

// Insert adds value with the given score.
//
// Complexity: O(log n)
func (h *MaxHeap[T]) Insert(value T, score int64) {
	heap.Push(&h.items, heapEntry[T]{value: value, score: score, seq: h.seq})
	h.seq++
}

// RemoveMax pops the highest-scored entry. The third result is false
// when the heap is empty.
//
// Complexity: O(log n)
func (h *MaxHeap[T]) RemoveMax() (T, int64, bool) {
	if len(h.items) == 0 {
		var zero T

		return zero, 0, false
	}
	e := heap.Pop(&h.items).(heapEntry[T])

	return e.value, e.score, true
}

// Peek returns the highest-scored entry without removing it.
func (h *MaxHeap[T]) Peek() (T, int64, bool) {
	if len(h.items) == 0 {
		var zero T

		return zero, 0, false
	}

	return h.items[0].value, h.items[0].score, true
}

// heapEntry pairs a value with its score; seq orders equal scores by
// insertion.
type heapEntry[T any] struct {
	value T
	score int64
	seq   uint64
}

// heapSlice implements container/heap.Interface with max ordering.
type heapSlice[T any] []heapEntry[T]

func (s heapSlice[T]) Len() int { return len(s) }

func (s heapSlice[T]) Less(i, j int) bool {
	if s[i].score != s[j].score {
		return s[i].score > s[j].score
	}

	return s[i].seq < s[j].seq
}

func (s heapSlice[T]) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *heapSlice[T]) Push(x any) { *s = append(*s, x.(heapEntry[T])) }

func (s *heapSlice[T]) Pop() any {
	old := *s
	n := len(old)
	e := old[n-1]
	*s = old[:n-1]

	return e
}
