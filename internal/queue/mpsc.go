// MIT License
//
// Copyright (c) 2024-2026 Tether Contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package queue

import (
	"sync/atomic"
)

// node is a single element of the queue's linked list.
type node[T any] struct {
	value T
	next  atomic.Pointer[node[T]]
}

// MPSC is a multi-producer single-consumer FIFO queue.
//
// Any number of goroutines may call Push concurrently; exactly one consumer
// goroutine may call Pop. Ordering is preserved with respect to overall
// arrival order. Operations are non-blocking and rely on atomic pointer
// swaps.
//
// Reference: https://concurrencyfreaks.blogspot.com/2014/04/multi-producer-single-consumer-queue.html
type MPSC[T any] struct {
	head   atomic.Pointer[node[T]]
	tail   atomic.Pointer[node[T]]
	length atomic.Int64
}

// NewMPSC creates an instance of MPSC.
func NewMPSC[T any]() *MPSC[T] {
	stub := new(node[T])
	q := new(MPSC[T])
	q.head.Store(stub)
	q.tail.Store(stub)
	return q
}

// Push appends the given value at the back of the queue. It is safe for
// concurrent use by multiple producers.
func (q *MPSC[T]) Push(value T) {
	n := &node[T]{value: value}
	prev := q.head.Swap(n)
	prev.next.Store(n)
	q.length.Add(1)
}

// Pop removes the value at the front of the queue. It returns false when the
// queue is empty. Pop must be called by a single consumer goroutine.
func (q *MPSC[T]) Pop() (T, bool) {
	var zero T
	tail := q.tail.Load()
	next := tail.next.Load()
	if next == nil {
		return zero, false
	}

	q.tail.Store(next)
	value := next.value
	next.value = zero // avoid memory leaks
	q.length.Add(-1)
	return value, true
}

// Len returns a snapshot of the number of elements in the queue. The value
// may be approximate under concurrency.
func (q *MPSC[T]) Len() int64 {
	return q.length.Load()
}

// IsEmpty reports whether the queue currently has no elements. The result is
// a best-effort snapshot, valid from the consumer goroutine.
func (q *MPSC[T]) IsEmpty() bool {
	tail := q.tail.Load()
	return tail.next.Load() == nil
}
