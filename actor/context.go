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
	"time"

	"github.com/obellion/tether/log"
)

// Context is the execution context handed to an actor's Work function. It is
// bound to the actor goroutine and must not be shared with or used from
// other goroutines; cross-actor interaction goes through the System.
type Context struct {
	pid    *pid
	system *System

	// stash holds dequeued messages that no selector has matched yet, in
	// arrival order. Owned by the actor goroutine, no locking needed.
	stash []any
}

func newContext(p *pid, system *System) *Context {
	return &Context{pid: p, system: system}
}

// Self returns the id of the running actor.
func (c *Context) Self() ID {
	return c.pid.id
}

// Name returns the name of the running actor.
func (c *Context) Name() string {
	return c.pid.name
}

// System returns the actor system the actor runs in.
func (c *Context) System() *System {
	return c.system
}

// Logger returns the system logger.
func (c *Context) Logger() log.Logger {
	return c.system.Logger()
}

// Receive blocks until a message matching one of the given selectors arrives
// and returns it. With no selectors every message matches. This is the only
// suspension point of an actor: while parked here the goroutine makes no
// progress and holds no locks.
//
// Non-matching messages are stashed in arrival order and re-examined by
// later Receive calls, so selective receive never reorders or drops
// messages.
//
// Receive returns ErrDead once the actor has been terminated, whether by
// Terminate, by a propagated exit signal, or by system shutdown.
func (c *Context) Receive(selectors ...Selector) (any, error) {
	// previously stashed messages take precedence, oldest first
	for i, msg := range c.stash {
		if matches(msg, selectors) {
			c.stash = append(c.stash[:i], c.stash[i+1:]...)
			return msg, nil
		}
	}

	for {
		for {
			msg := c.pid.mailbox.Dequeue()
			if msg == nil {
				break
			}
			if matches(msg, selectors) {
				return msg, nil
			}
			c.stash = append(c.stash, msg)
		}

		select {
		case <-c.pid.signal:
		case <-c.pid.done:
			return nil, ErrDead
		}
	}
}

// TrapExit switches the trap-exit mode of the running actor. When enabled,
// exit signals propagated over links are delivered as *Exit messages instead
// of terminating the actor.
func (c *Context) TrapExit(trap bool) {
	c.pid.trap.Store(trap)
}

// Trapping reports whether the running actor currently traps exit signals.
func (c *Context) Trapping() bool {
	return c.pid.trap.Load()
}

// Tell sends a message to another actor, fire-and-forget.
func (c *Context) Tell(to ID, message any) error {
	return c.system.Tell(to, message)
}

// Link links the running actor with the given actor.
func (c *Context) Link(to ID) error {
	return c.system.Link(c.pid.id, to)
}

// Unlink removes the link between the running actor and the given actor.
func (c *Context) Unlink(to ID) error {
	return c.system.Unlink(c.pid.id, to)
}

// Monitor starts watching the given actor for termination on behalf of the
// running actor.
func (c *Context) Monitor(target ID) (MonitorRef, error) {
	return c.system.Monitor(c.pid.id, target)
}

// Demonitor removes a pending monitor registration.
func (c *Context) Demonitor(ref MonitorRef) bool {
	return c.system.Demonitor(ref)
}

// ScheduleOnce schedules a message to be delivered to the running actor's
// own mailbox no earlier than the given delay. This is the idiom for
// timeouts and countdowns: the runtime itself has no intrinsic timers.
func (c *Context) ScheduleOnce(delay time.Duration, message any) (ScheduleRef, error) {
	return c.system.ScheduleOnce(delay, message, c.pid.id)
}

func matches(msg any, selectors []Selector) bool {
	if len(selectors) == 0 {
		return true
	}
	for _, selector := range selectors {
		if selector(msg) {
			return true
		}
	}
	return false
}
