package datastructure

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var (
	ErrHeapEmpty       = errors.New("heap is empty")
	ErrItemNotInHeap   = errors.New("item not in heap")
	ErrInvalidIncrease = errors.New("new rank is smaller than current rank")
)

type PriorityQueueNode[T constraints.Ordered] struct {
	rank int64
	item T
}

func (p *PriorityQueueNode[T]) GetItem() T {
	return p.item
}

func (p *PriorityQueueNode[T]) GetRank() int64 {
	return p.rank
}

func NewPriorityQueueNode[T constraints.Ordered](rank int64, item T) PriorityQueueNode[T] {
	return PriorityQueueNode[T]{rank: rank, item: item}
}

// MaxHeap binary heap priorityqueue with an item -> heap position index, so ranks can be increased in O(logN).
// equal ranks are ordered by the smaller item first, extraction order never depends on insertion order.
type MaxHeap[T constraints.Ordered] struct {
	heap []PriorityQueueNode[T]
	pos  map[T]int
}

func NewMaxHeap[T constraints.Ordered]() *MaxHeap[T] {
	return &MaxHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
		pos:  make(map[T]int),
	}
}

func (h *MaxHeap[T]) parent(index int) int {
	return (index - 1) / 2
}

func (h *MaxHeap[T]) leftChild(index int) int {
	return 2*index + 1
}

func (h *MaxHeap[T]) rightChild(index int) int {
	return 2*index + 2
}

// higher reports whether node i must sit above node j.
func (h *MaxHeap[T]) higher(i, j int) bool {
	if h.heap[i].rank != h.heap[j].rank {
		return h.heap[i].rank > h.heap[j].rank
	}
	return h.heap[i].item < h.heap[j].item
}

func (h *MaxHeap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i].item] = i
	h.pos[h.heap[j].item] = j
}

// heapifyUp move node at index up while it is higher than its parent. O(logN) tree height.
func (h *MaxHeap[T]) heapifyUp(index int) {
	for index != 0 && h.higher(index, h.parent(index)) {
		h.swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown move node at index down to the higher of its children until heap property holds. O(logN) tree height.
func (h *MaxHeap[T]) heapifyDown(index int) {
	for {
		largest := index
		left := h.leftChild(index)
		right := h.rightChild(index)

		if left < len(h.heap) && h.higher(left, largest) {
			largest = left
		}
		if right < len(h.heap) && h.higher(right, largest) {
			largest = right
		}
		if largest == index {
			return
		}
		h.swap(index, largest)
		index = largest
	}
}

func (h *MaxHeap[T]) isEmpty() bool {
	return len(h.heap) == 0
}

func (h *MaxHeap[T]) Size() int {
	return len(h.heap)
}

func (h *MaxHeap[T]) Clear() {
	h.heap = make([]PriorityQueueNode[T], 0)
	h.pos = make(map[T]int)
}

// Contains reports whether item is still waiting in the heap.
func (h *MaxHeap[T]) Contains(item T) bool {
	_, ok := h.pos[item]
	return ok
}

// GetMax root of the max-heap (index 0)
func (h *MaxHeap[T]) GetMax() (PriorityQueueNode[T], error) {
	if h.isEmpty() {
		return PriorityQueueNode[T]{}, ErrHeapEmpty
	}
	return h.heap[0], nil
}

func (h *MaxHeap[T]) Insert(key PriorityQueueNode[T]) {
	h.heap = append(h.heap, key)
	index := h.Size() - 1
	h.pos[key.item] = index
	h.heapifyUp(index)
}

// ExtractMax pop root of the max-heap. O(logN)
func (h *MaxHeap[T]) ExtractMax() (PriorityQueueNode[T], error) {
	if h.isEmpty() {
		return PriorityQueueNode[T]{}, ErrHeapEmpty
	}
	root := h.heap[0]
	last := h.Size() - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	delete(h.pos, root.item)
	h.heapifyDown(0)
	return root, nil
}

// IncreaseKey add delta (>= 0) to the rank of item. O(logN) heapify.
func (h *MaxHeap[T]) IncreaseKey(item T, delta int64) error {
	idx, ok := h.pos[item]
	if !ok {
		return ErrItemNotInHeap
	}
	if delta < 0 {
		return ErrInvalidIncrease
	}
	h.heap[idx].rank += delta
	h.heapifyUp(idx)
	return nil
}

func (h *MaxHeap[T]) GetItem(item T) (PriorityQueueNode[T], error) {
	idx, ok := h.pos[item]
	if !ok {
		return PriorityQueueNode[T]{}, ErrItemNotInHeap
	}
	return h.heap[idx], nil
}
