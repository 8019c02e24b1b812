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
	"errors"
	"fmt"
)

// Reason describes why an actor terminated. Any error value is a valid
// reason; ReasonNormal is the single graceful one. Reasons other than
// ReasonNormal are abnormal and propagate along links to non-trapping
// partners.
type Reason = error

var (
	// ReasonNormal is the graceful termination reason. It never cascades
	// along links, though trapping link partners are still notified.
	ReasonNormal Reason = errors.New("normal")

	// ReasonShutdown is the abnormal reason used when the system stops and
	// forcibly terminates all remaining actors.
	ReasonShutdown Reason = errors.New("shutdown")
)

// IsNormal reports whether the given termination reason is graceful.
// A nil reason is treated as ReasonNormal.
func IsNormal(reason Reason) bool {
	return reason == nil || errors.Is(reason, ReasonNormal)
}

// PanicError is the termination reason of an actor whose Work panicked.
// It retains the recovered value and the goroutine stack at the point of
// the panic.
type PanicError struct {
	value any
	stack []byte
}

// NewPanicError creates a PanicError from a recovered value and stack trace.
func NewPanicError(value any, stack []byte) *PanicError {
	return &PanicError{value: value, stack: stack}
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("actor panicked: %v", e.value)
}

// Value returns the recovered panic value.
func (e *PanicError) Value() any {
	return e.value
}

// Stack returns the goroutine stack captured when the panic was recovered.
func (e *PanicError) Stack() []byte {
	return e.stack
}
