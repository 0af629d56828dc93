package evictingqueue

import "sync"

//
// EvictingQueue is a thread-safe, bounded FIFO. Adding to a full queue drops its oldest element, so
// it always holds the most recent elements it has seen. A maximum size of zero or less means the
// queue never evicts.
//
type EvictingQueue[T any] struct {
	mu    sync.Mutex
	size  int
	queue []T
}

//
// New instantiates a new evicting queue with the specified maximum size.
//
func New[T any](maxSize int) *EvictingQueue[T] {
	return &EvictingQueue[T]{
		size:  maxSize,
		queue: make([]T, 0),
	}
}

//
// Add appends the provided elements in order, evicting the oldest ones as needed to stay within
// the maximum size.
//
func (o *EvictingQueue[T]) Add(elems ...T) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.queue = append(o.queue, elems...)

	if o.size > 0 && len(o.queue) > o.size {
		o.queue = append(o.queue[:0:0], o.queue[len(o.queue)-o.size:]...)
	}
}

//
// Get returns the element at the specified index (zero being the oldest) and a true sentinel, or
// the zero value and a false sentinel if the index is out-of-range.
//
func (o *EvictingQueue[T]) Get(index int) (T, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if index < 0 || index >= len(o.queue) {
		var zero T

		return zero, false
	}

	return o.queue[index], true
}

//
// Items returns a copy of the queue's contents, oldest first.
//
func (o *EvictingQueue[T]) Items() []T {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]T(nil), o.queue...)
}

//
// Len returns the current length of the queue.
//
func (o *EvictingQueue[T]) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.queue)
}
