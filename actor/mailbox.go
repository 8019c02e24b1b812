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

package actor

// Mailbox defines the contract for an actor's message queue.
//
// Concurrency and ordering
//   - Implementations MUST be thread-safe for multiple concurrent producers
//     calling Enqueue.
//   - The actor consumes from its own single goroutine, so implementations
//     SHOULD optimize Dequeue for a single consumer (MPSC).
//   - The default expectation is FIFO ordering with respect to overall
//     arrival order; this yields per sender-receiver pair ordering.
//
// Non-blocking behavior
//   - Enqueue MUST be non-blocking. Bounded implementations MUST return an
//     error when full instead of blocking.
//   - Dequeue MUST be non-blocking and return nil when the mailbox is empty;
//     the runtime parks the consumer on a separate wakeup signal.
//
// Resource management
//   - Dispose MUST release any resources held by the implementation. After
//     Dispose, Enqueue SHOULD fail and Dequeue SHOULD return nil.
type Mailbox interface {
	// Enqueue pushes a message into the mailbox. Bounded implementations
	// return ErrMailboxFull when at capacity.
	Enqueue(msg any) error
	// Dequeue fetches the next message from the mailbox, or nil when empty.
	Dequeue() (msg any)
	// IsEmpty reports whether the mailbox currently has no messages.
	// This is a best-effort snapshot under concurrency.
	IsEmpty() bool
	// Len returns a snapshot of the number of messages in the mailbox.
	Len() int64
	// Dispose releases any resources held by the implementation. The mailbox
	// MUST NOT be used after Dispose returns.
	Dispose()
}
