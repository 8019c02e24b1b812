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

// ID uniquely identifies a spawned actor within a System for its whole
// lifetime. IDs are never reused.
type ID string

// MonitorRef uniquely identifies a monitor registration. It is returned by
// Monitor and carried by the Down notification the monitor eventually fires.
type MonitorRef string

// Work is the body of an actor. It runs on its own goroutine and suspends
// only inside Context.Receive. Returning nil terminates the actor with
// ReasonNormal; returning an error terminates it with that error as the
// abnormal reason. A panic inside Work is recovered and becomes a
// *PanicError termination reason.
type Work func(ctx *Context) error

// Selector is a predicate over incoming messages used by Context.Receive
// for selective receive. Messages for which the selector returns false stay
// stashed in arrival order until a later receive matches them.
type Selector func(msg any) bool

// TypeOf returns a Selector matching messages of the concrete type T.
func TypeOf[T any]() Selector {
	return func(msg any) bool {
		_, ok := msg.(T)
		return ok
	}
}
