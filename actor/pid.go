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

import (
	"go.uber.org/atomic"
)

// pid is the runtime handle of a spawned actor. It owns the mailbox, the
// wakeup signal the consumer goroutine parks on, and the lifecycle flags.
//
// Lifecycle: dead flips exactly once (CompareAndSwap in the dispatcher,
// under the coupling mutex) and done is closed right after, releasing the
// consumer goroutine. Termination reasons live in the dispatcher tombstones,
// not here.
type pid struct {
	id      ID
	name    string
	mailbox Mailbox

	// signal wakes the consumer goroutine parked in Receive. Capacity one:
	// a pending wakeup is never lost, duplicates collapse.
	signal chan struct{}
	// done is closed when the actor terminates, releasing a parked Receive.
	done chan struct{}

	trap *atomic.Bool
	dead *atomic.Bool
}

func newPID(id ID, name string, mailbox Mailbox, trapExit bool) *pid {
	return &pid{
		id:      id,
		name:    name,
		mailbox: mailbox,
		signal:  make(chan struct{}, 1),
		done:    make(chan struct{}),
		trap:    atomic.NewBool(trapExit),
		dead:    atomic.NewBool(false),
	}
}

// deliver enqueues the given message and wakes the consumer. It returns
// ErrDead when the actor has terminated or the mailbox error when the
// mailbox rejected the message; the caller dead-letters the message.
func (p *pid) deliver(msg any) error {
	if p.dead.Load() {
		return ErrDead
	}
	if err := p.mailbox.Enqueue(msg); err != nil {
		return err
	}
	p.notify()
	return nil
}

// notify nudges the consumer goroutine without blocking. A buffered slot of
// one guarantees the wakeup survives until the consumer next parks.
func (p *pid) notify() {
	select {
	case p.signal <- struct{}{}:
	default:
	}
}
